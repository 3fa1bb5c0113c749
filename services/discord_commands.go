package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"attendbot/constants"
	"attendbot/dto"

	"github.com/goccy/go-json"
)

const DiscordAPIBase = "https://discord.com/api/v10"

// SlashCommands định nghĩa các lệnh đăng ký với Discord
func SlashCommands() []dto.ApplicationCommand {
	dateOption := func(desc string, required bool) []dto.ApplicationCommandOption {
		return []dto.ApplicationCommandOption{{
			Type:        dto.OptionTypeString,
			Name:        constants.OptionDate,
			Description: desc,
			Required:    required,
		}}
	}
	return []dto.ApplicationCommand{
		{Name: constants.CommandCheckIn, Description: "출근을 기록합니다.", Type: 1},
		{Name: constants.CommandCheckOut, Description: "퇴근을 기록합니다.", Type: 1},
		{Name: constants.CommandReport, Description: "출퇴근 기록을 조회합니다.", Type: 1,
			Options: dateOption(`조회할 날짜 (YYYY-MM-DD) 또는 "오늘", "이번주", "이번달"`, false)},
		{Name: constants.CommandDelete, Description: "출퇴근 기록을 삭제합니다.", Type: 1,
			Options: dateOption("삭제할 날짜 (YYYY-MM-DD)", true)},
		{Name: constants.CommandLotto, Description: "로또 번호를 자동으로 생성합니다.", Type: 1},
		{Name: constants.CommandMenu, Description: "오늘의 점심 메뉴를 추천합니다.", Type: 1},
	}
}

// CommandRegistrar ghi đè danh sách slash command của ứng dụng
type CommandRegistrar struct {
	client        *http.Client
	baseURL       string
	applicationID string
	botToken      string
}

func NewCommandRegistrar(applicationID, botToken string) *CommandRegistrar {
	return &CommandRegistrar{
		client:        &http.Client{Timeout: 10 * time.Second},
		baseURL:       DiscordAPIBase,
		applicationID: applicationID,
		botToken:      botToken,
	}
}

// WithBaseURL đổi endpoint, dùng cho test
func (r *CommandRegistrar) WithBaseURL(baseURL string) *CommandRegistrar {
	r.baseURL = baseURL
	return r
}

func (r *CommandRegistrar) Register(ctx context.Context, commands []dto.ApplicationCommand) error {
	body, err := json.Marshal(commands)
	if err != nil {
		return fmt.Errorf("failed to encode commands: %w", err)
	}

	url := fmt.Sprintf("%s/applications/%s/commands", r.baseURL, r.applicationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+r.botToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}
