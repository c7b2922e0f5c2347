package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mtlprog/giftideas/internal/model"
)

// FieldValue is a form field as sent by API clients. It accepts a JSON
// string or a JSON number and keeps the raw text, so it goes through the
// same coercion as form input ("30", 30 and "30 years" all mean 30).
type FieldValue struct {
	Raw string
	Set bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = FieldValue{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FieldValue{Raw: s, Set: true}
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected string or number, got %s", data)
		}
		*v = FieldValue{Raw: n.String(), Set: true}
		return nil
	}
}

// GiftIdeasRequest is the body of POST /api/v1/gift-ideas.
// Omitted fields take the server's default form values.
type GiftIdeasRequest struct {
	Gender   FieldValue `json:"gender" swaggertype:"string" enums:"man,woman" example:"woman"`
	Age      FieldValue `json:"age" swaggertype:"integer" example:"30"`
	PriceMin FieldValue `json:"priceMin" swaggertype:"integer" example:"20"`
	PriceMax FieldValue `json:"priceMax" swaggertype:"integer" example:"80"`
	Hobbies  FieldValue `json:"hobbies" swaggertype:"string" example:"reading"`
}

func (r GiftIdeasRequest) values() map[model.Field]FieldValue {
	return map[model.Field]FieldValue{
		model.FieldGender:   r.Gender,
		model.FieldAge:      r.Age,
		model.FieldPriceMin: r.PriceMin,
		model.FieldPriceMax: r.PriceMax,
		model.FieldHobbies:  r.Hobbies,
	}
}

// GiftIdeasResponse is returned on success.
type GiftIdeasResponse struct {
	Result string    `json:"result" example:"1. A Kindle"`
	Input  InputEcho `json:"input"`
}

// InputEcho is the coerced form snapshot that was sent to the suggestion service.
type InputEcho struct {
	Gender   string `json:"gender" example:"woman"`
	Age      int    `json:"age" example:"30"`
	PriceMin int    `json:"priceMin" example:"20"`
	PriceMax int    `json:"priceMax" example:"80"`
	Hobbies  string `json:"hobbies" example:"reading"`
}

func echoInput(in model.FormInput) InputEcho {
	return InputEcho{
		Gender:   string(in.Gender),
		Age:      in.Age,
		PriceMin: in.PriceMin,
		PriceMax: in.PriceMax,
		Hobbies:  in.Hobbies,
	}
}

// HistoryItem is one stored suggestion.
type HistoryItem struct {
	ID        int64     `json:"id" example:"42"`
	Input     InputEcho `json:"input"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryResponse wraps a list of history items.
type HistoryResponse struct {
	Data  []HistoryItem `json:"data"`
	Limit int           `json:"limit" example:"50"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
