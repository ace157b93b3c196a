package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// FlexTime accepts the date encodings the wizard produces: an empty
// string (field untouched, stays zero), an RFC 3339 string, or a JSON
// timestamp already in date form.
type FlexTime struct {
	time.Time
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte(`null`)) || bytes.Equal(data, []byte(`""`)) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
		t.Time = parsed
		return nil
	}
	return t.Time.UnmarshalJSON(data)
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return t.Time.MarshalJSON()
}

// FileUpload carries one binary attachment through the submission
// pipeline. Content is the full file body.
type FileUpload struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Content     []byte `json:"content"`
}

// EventDraft is the whole event tree as assembled by the wizard. It is
// validated as a unit; nothing is persisted before final submission.
type EventDraft struct {
	Name         string       `json:"name" validate:"required"`
	CategoryID   string       `json:"categoryId" validate:"required"`
	Mode         EventMode    `json:"mode" validate:"required,oneof=IN_PERSON ONLINE"`
	City         string       `json:"city"`
	Neighborhood string       `json:"neighborhood"`
	Address      string       `json:"address"`
	UF           string       `json:"uf"`
	Description  string       `json:"description" validate:"required"`
	Map          string       `json:"map"`
	StartDate    FlexTime     `json:"startDate"`
	EndDate      FlexTime     `json:"endDate"`
	Image        *FileUpload  `json:"image"`
	Ticket       *TicketDraft `json:"ticket" validate:"omitempty"`
	Days         []DayDraft   `json:"days" validate:"omitempty,min=1,dive"`
}

type DayDraft struct {
	Date      FlexTime     `json:"date"`
	StartTime FlexTime     `json:"startTime"`
	EndTime   FlexTime     `json:"endTime"`
	Batches   []BatchDraft `json:"batches" validate:"min=1,dive"`
}

type BatchDraft struct {
	Name      string        `json:"name" validate:"required"`
	StartDate FlexTime      `json:"startDate"`
	EndDate   FlexTime      `json:"endDate"`
	Tickets   []TicketDraft `json:"tickets" validate:"min=1,dive"`
}

type TicketDraft struct {
	SectorID  string       `json:"sectorId" validate:"required"`
	Price     int          `json:"price" validate:"min=0"`
	Quantity  int          `json:"quantity" validate:"min=0,max=999"`
	Gender    TicketGender `json:"gender" validate:"oneof=MALE FEMALE"`
	Obs       string       `json:"obs"`
	IsNominal bool         `json:"isNominal"`
	File      *FileUpload  `json:"file"`
}
