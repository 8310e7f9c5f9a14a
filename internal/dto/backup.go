package dto

import "encoding/json"

// RestoreRequest replaces the live document with an uploaded backup. The
// replacement only happens with an explicit confirmation.
type RestoreRequest struct {
	Document json.RawMessage `json:"document" validate:"required"`
	Confirm  bool            `json:"confirm"`
}
