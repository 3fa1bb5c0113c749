package validator

import (
	"fmt"
	"strings"

	"attendbot/errors"

	playground "github.com/go-playground/validator/v10"
)

var validate = playground.New()

// Struct validate struct theo tag `validate`, trả về AppError INVALID_COMMAND
func Struct(v interface{}) error {
	return StructWithCode(v, errors.ErrCodeInvalidCommand, "잘못된 명령 요청입니다.")
}

// StructWithCode validate struct và bọc lỗi với mã tùy ý
func StructWithCode(v interface{}, code errors.ErrorCode, message string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	return errors.NewAppError(code, message, fmt.Errorf("%s", describe(err)))
}

// describe liệt kê các field lỗi: "CallerID(required), Kind(oneof)"
func describe(err error) string {
	verrs, ok := err.(playground.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s(%s)", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
