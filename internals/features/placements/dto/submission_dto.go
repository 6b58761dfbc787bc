package dto

// CreditInput is one collaborator row as supplied on create/edit.
// Credits are always replaced as a whole set, never patched row by row.
type CreditInput struct {
	FirstName      string  `json:"first_name" validate:"required,max=100"`
	LastName       string  `json:"last_name" validate:"required,max=100"`
	Role           string  `json:"role" validate:"required,max=50"`
	SplitPercent   float64 `json:"split_percent" validate:"gte=0,lte=100"`
	ProAffiliation string  `json:"pro_affiliation" validate:"omitempty,max=50"`
	IPINumber      string  `json:"ipi_number" validate:"omitempty,max=30"`
	IsPrimary      bool    `json:"is_primary"`
}

type CreateSubmissionRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Artist      string `json:"artist" validate:"required,max=255"`
	Album       string `json:"album" validate:"omitempty,max=255"`
	ISRC        string `json:"isrc" validate:"omitempty,max=20"`
	Genre       string `json:"genre" validate:"omitempty,max=100"`
	ReleaseYear *int   `json:"release_year" validate:"omitempty,gte=1900,lte=2100"`
	Label       string `json:"label" validate:"omitempty,max=255"`
	Notes       string `json:"notes"`

	Credits []CreditInput `json:"credits" validate:"required,min=1,dive"`
}

// EditSubmissionRequest: nil pointer = leave the field alone.
// A non-nil Credits slice replaces the whole credit set.
type EditSubmissionRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Artist      *string `json:"artist" validate:"omitempty,max=255"`
	Album       *string `json:"album" validate:"omitempty,max=255"`
	ISRC        *string `json:"isrc" validate:"omitempty,max=20"`
	Genre       *string `json:"genre" validate:"omitempty,max=100"`
	ReleaseYear *int    `json:"release_year" validate:"omitempty,gte=1900,lte=2100"`
	Label       *string `json:"label" validate:"omitempty,max=255"`
	Notes       *string `json:"notes"`

	Credits []CreditInput `json:"credits" validate:"omitempty,min=1,dive"`
}

type ApproveRequest struct {
	Notes string `json:"notes"`
}

type DenyRequest struct {
	DenialReason string `json:"denial_reason" validate:"required"`
}

type RequestDocumentsRequest struct {
	DocumentsRequested string `json:"documents_requested" validate:"required"`
}

type ResubmitRequest struct {
	Notes string `json:"notes"`
}
