package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringSlice is a custom type for storing string arrays as JSON text columns.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}

	return json.Unmarshal(bytesToParse, s)
}

// ResponseRecord is one answered question inside an attempt's responses
// column.
type ResponseRecord struct {
	Question  string  `json:"question"`
	Subject   string  `json:"subject"`
	Topic     string  `json:"topic"`
	Correct   bool    `json:"correct"`
	TimeTaken float64 `json:"time_taken"`
}

// ResponseSlice stores an attempt's responses as a JSON text column.
type ResponseSlice []ResponseRecord

// Value implements the driver.Valuer interface
func (r ResponseSlice) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (r *ResponseSlice) Scan(value interface{}) error {
	if value == nil {
		*r = ResponseSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("ResponseSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*r = ResponseSlice{}
		return nil
	}

	return json.Unmarshal(bytesToParse, r)
}

// ScoreBundleJSON stores the frozen score bundle of an attempt as a JSON text
// column. Scores are persisted as computed at submission time and never
// recomputed on read.
type ScoreBundleJSON struct {
	TopicMastery       float64 `json:"topic_mastery"`
	CognitiveReadiness float64 `json:"cognitive_readiness"`
	Stability          float64 `json:"stability"`
	Confidence         float64 `json:"confidence"`
	AccuracyTrend      float64 `json:"accuracy_trend"`
	ResponseTimeNorm   float64 `json:"response_time_norm"`
	Pacing             string  `json:"pacing"`
	Tone               string  `json:"tone"`
}

// Value implements the driver.Valuer interface
func (b ScoreBundleJSON) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (b *ScoreBundleJSON) Scan(value interface{}) error {
	if value == nil {
		*b = ScoreBundleJSON{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("ScoreBundleJSON Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*b = ScoreBundleJSON{}
		return nil
	}

	return json.Unmarshal(bytesToParse, b)
}
