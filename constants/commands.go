package constants

// Tên slash command (giữ nguyên tiếng Hàn như khi đăng ký với Discord)
const (
	CommandCheckIn  = "출근"
	CommandCheckOut = "퇴근"
	CommandReport   = "기록"
	CommandDelete   = "삭제"
	CommandLotto    = "로또"
	CommandMenu     = "점심"

	OptionDate = "날짜"
)

// Màu embed
const (
	ColorSuccess = 0x00FF00
	ColorFailure = 0xFF0000
	ColorReport  = 0x0099FF
	ColorLotto   = 0xFFD700
	ColorMenu    = 0xFF9900
)

// Header chữ ký của Discord interaction
const (
	HeaderSignature = "X-Signature-Ed25519"
	HeaderTimestamp = "X-Signature-Timestamp"
	HeaderRequestID = "X-Request-ID"
)
