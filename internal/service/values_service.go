package service

import (
	"github.com/springweb/springweb/internal/config"
)

// ValuesSnapshot is every configured sample value, in the shapes the
// values endpoint exposes them.
type ValuesSnapshot struct {
	Username     string         `json:"username"`
	Message      string         `json:"message"`
	ListOfValues []string       `json:"listOfValues"`
	Code         int            `json:"code"`
	ValueList    []string       `json:"valueList"`
	ValueString  string         `json:"valueString"`
	ValuesMap    map[string]any `json:"valuesMap"`
	Product      string         `json:"product"`
	Message2     *string        `json:"message2"`
	Code2        *int           `json:"code2"`
}

// ValuesService exposes the configuration values loaded at start
type ValuesService struct {
	cfg *config.Config
}

// NewValuesService creates a new values service
func NewValuesService(cfg *config.Config) *ValuesService {
	return &ValuesService{cfg: cfg}
}

// Snapshot returns the configured values. message2 and code2 are read
// through the generic property lookup rather than the typed fields and are
// null when the key is missing or does not convert.
func (s *ValuesService) Snapshot() ValuesSnapshot {
	v := s.cfg.Values

	snap := ValuesSnapshot{
		Username:     v.Username,
		Message:      v.Message,
		ListOfValues: v.List(),
		Code:         v.Code,
		ValueList:    v.List(),
		ValueString:  v.Upper(),
		ValuesMap:    v.ValuesMap,
		Product:      v.Product(),
	}
	if snap.ValuesMap == nil {
		snap.ValuesMap = map[string]any{}
	}

	if msg, ok := s.cfg.Property("config.message"); ok {
		snap.Message2 = &msg
	}
	if code, err := s.cfg.PropertyInt("config.code"); err == nil {
		snap.Code2 = &code
	}

	return snap
}
