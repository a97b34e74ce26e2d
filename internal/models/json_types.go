package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON column helpers. Every loosely-typed column goes through these so a
// malformed row fails on read instead of leaking garbage into the domain.

type TimeSlotRecord struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type TimeSlotList []TimeSlotRecord

func (l TimeSlotList) Value() (driver.Value, error) {
	if l == nil {
		l = TimeSlotList{}
	}
	for i, s := range l {
		if s.StartTime == "" || s.EndTime == "" {
			return nil, fmt.Errorf("time slot %d: missing start or end time", i)
		}
	}
	return json.Marshal(l)
}

func (l *TimeSlotList) Scan(src any) error {
	b, err := jsonBytes(src)
	if err != nil {
		return err
	}
	var out TimeSlotList
	if err := json.Unmarshal(b, &out); err != nil {
		return fmt.Errorf("malformed time slot list: %w", err)
	}
	for i, s := range out {
		if s.StartTime == "" || s.EndTime == "" {
			return fmt.Errorf("time slot %d: missing start or end time", i)
		}
	}
	*l = out
	return nil
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error {
	b, err := jsonBytes(src)
	if err != nil {
		return err
	}
	var out StringList
	if err := json.Unmarshal(b, &out); err != nil {
		return fmt.Errorf("malformed string list: %w", err)
	}
	*l = out
	return nil
}

type JSONMap map[string]string

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		m = JSONMap{}
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(src any) error {
	b, err := jsonBytes(src)
	if err != nil {
		return err
	}
	var out JSONMap
	if err := json.Unmarshal(b, &out); err != nil {
		return fmt.Errorf("malformed value map: %w", err)
	}
	*m = out
	return nil
}

type SubField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

type SubFieldList []SubField

func (l SubFieldList) Value() (driver.Value, error) {
	if l == nil {
		l = SubFieldList{}
	}
	for i, f := range l {
		if f.Key == "" {
			return nil, fmt.Errorf("sub field %d: missing key", i)
		}
	}
	return json.Marshal(l)
}

func (l *SubFieldList) Scan(src any) error {
	b, err := jsonBytes(src)
	if err != nil {
		return err
	}
	var out SubFieldList
	if err := json.Unmarshal(b, &out); err != nil {
		return fmt.Errorf("malformed sub field list: %w", err)
	}
	for i, f := range out {
		if f.Key == "" {
			return fmt.Errorf("sub field %d: missing key", i)
		}
	}
	*l = out
	return nil
}

func jsonBytes(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return []byte("null"), nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported JSON column source type %T", src)
	}
}
