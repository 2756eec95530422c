package server

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type createGamePayload struct {
	PlayerName string `json:"player_name" validate:"required,max=24"`
}

type joinGamePayload struct {
	GameCode   string `json:"game_code" validate:"required,len=4"`
	PlayerName string `json:"player_name" validate:"required,max=24"`
}

type startGamePayload struct {
	GameCode      string        `json:"game_code" validate:"required,len=4"`
	TimerSettings TimerSettings `json:"timer_settings" validate:"omitempty"`
}

type submitPromptPayload struct {
	GameCode string `json:"game_code" validate:"required,len=4"`
	BookID   string `json:"book_id" validate:"required"`
	Prompt   string `json:"prompt" validate:"required,max=140"`
}

type submitDrawingPayload struct {
	GameCode string `json:"game_code" validate:"required,len=4"`
	BookID   string `json:"book_id" validate:"required"`
	Drawing  string `json:"drawing" validate:"required,max=256000"`
}

type submitDescriptionPayload struct {
	GameCode    string `json:"game_code" validate:"required,len=4"`
	BookID      string `json:"book_id" validate:"required"`
	Description string `json:"description" validate:"required,max=140"`
}

func decodePayload(raw json.RawMessage, dest any) error {
	if len(raw) == 0 {
		return errors.New("missing payload")
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return err
	}
	return validate.Struct(dest)
}

func normalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", errors.New("name is required")
	}
	return trimmed, nil
}
