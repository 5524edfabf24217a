package models

import (
	"slices"
	"time"
)

// ComplaintStatus is the admin handling state of a complaint
type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintRejected   ComplaintStatus = "rejected"
)

// ParseComplaintStatus validates a requested complaint status
func ParseComplaintStatus(s string) (ComplaintStatus, bool) {
	switch st := ComplaintStatus(s); st {
	case ComplaintPending, ComplaintInProgress, ComplaintResolved, ComplaintRejected:
		return st, true
	}
	return "", false
}

// complaintMoves lists the statuses each status may move to; resolved and rejected are final
var complaintMoves = map[ComplaintStatus][]ComplaintStatus{
	ComplaintPending:    {ComplaintInProgress, ComplaintResolved, ComplaintRejected},
	ComplaintInProgress: {ComplaintResolved, ComplaintRejected},
}

// ComplaintSourcesFor returns the statuses from which a complaint may move to target
func ComplaintSourcesFor(target ComplaintStatus) []ComplaintStatus {
	var from []ComplaintStatus
	for src, targets := range complaintMoves {
		for _, t := range targets {
			if t == target {
				from = append(from, src)
			}
		}
	}
	slices.Sort(from)
	return from
}

// Severity ranks how urgent a complaint is
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ParseSeverity validates a severity; empty means medium
func ParseSeverity(s string) (Severity, bool) {
	switch sv := Severity(s); sv {
	case "":
		return SeverityMedium, true
	case SeverityLow, SeverityMedium, SeverityHigh:
		return sv, true
	}
	return "", false
}

// Complaint is a report filed by one principal against another
type Complaint struct {
	ID            string          `bson:"_id" json:"id"`
	Author        Creator         `bson:"author" json:"author"`
	TargetKind    PrincipalKind   `bson:"target_kind" json:"target_kind"`
	TargetID      string          `bson:"target_id" json:"target_id"`
	TargetName    string          `bson:"target_name" json:"target_name"`
	Subject       string          `bson:"subject" json:"subject"`
	Description   string          `bson:"description" json:"description"`
	Severity      Severity        `bson:"severity" json:"severity"`
	Status        ComplaintStatus `bson:"status" json:"status"`
	AdminResponse string          `bson:"admin_response,omitempty" json:"admin_response,omitempty"`
	Attachment    string          `bson:"attachment,omitempty" json:"attachment,omitempty"`
	CreatedAt     time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt     *time.Time      `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	UpdatedBy     string          `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// ComplaintInput carries the author-supplied fields of a new complaint
type ComplaintInput struct {
	TargetKind  string
	TargetID    string
	Subject     string
	Description string
	Severity    string
	Attachment  string
}
