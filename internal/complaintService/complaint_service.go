package complaints

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	identity "artisan-market/internal/identityService"
	"artisan-market/internal/marketerrors"
	"artisan-market/internal/models"
	"artisan-market/internal/repository"
	"artisan-market/utils"
)

// NameResolver turns a principal identity of a known kind into a display name
type NameResolver interface {
	DisplayNameFor(ctx context.Context, kind models.PrincipalKind, id string) string
}

// ComplaintService files complaints and lets admins work through them
type ComplaintService struct {
	store repository.ComplaintStore
	names NameResolver
	now   func() time.Time
}

// NewComplaintService creates a new ComplaintService instance
func NewComplaintService(store repository.ComplaintStore, names NameResolver) *ComplaintService {
	return &ComplaintService{
		store: store,
		names: names,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Filter narrows the admin listing; zero fields are ignored
type Filter struct {
	Status   string
	Severity string
}

// Submit files a complaint by caller against another buyer, seller or instructor
func (s *ComplaintService) Submit(ctx context.Context, caller models.Caller, in models.ComplaintInput) (models.Complaint, error) {
	if caller.Role == models.KindAdmin {
		return models.Complaint{}, fmt.Errorf("service: admins cannot file complaints: %w", marketerrors.ErrForbidden)
	}

	target, ok := models.ParsePrincipalKind(in.TargetKind)
	if !ok || target == models.KindAdmin {
		return models.Complaint{}, marketerrors.WithDetail(marketerrors.ErrInvalidInput, "target_kind must be buyer, seller or instructor")
	}
	targetID := strings.TrimSpace(in.TargetID)
	subject := strings.TrimSpace(in.Subject)
	description := strings.TrimSpace(in.Description)
	switch {
	case targetID == "":
		return models.Complaint{}, marketerrors.WithDetail(marketerrors.ErrInvalidInput, "target_id is required")
	case subject == "":
		return models.Complaint{}, marketerrors.WithDetail(marketerrors.ErrInvalidInput, "subject is required")
	case description == "":
		return models.Complaint{}, marketerrors.WithDetail(marketerrors.ErrInvalidInput, "description is required")
	case target == caller.Role && targetID == caller.Identity:
		return models.Complaint{}, marketerrors.WithDetail(marketerrors.ErrInvalidInput, "you cannot file a complaint against yourself")
	}
	severity, ok := models.ParseSeverity(strings.ToLower(strings.TrimSpace(in.Severity)))
	if !ok {
		return models.Complaint{}, marketerrors.WithDetail(marketerrors.ErrInvalidInput, "severity must be low, medium or high")
	}

	name := s.names.DisplayNameFor(ctx, target, targetID)
	if name == identity.UnknownName {
		return models.Complaint{}, marketerrors.WithDetail(marketerrors.ErrPrincipalNotFound, "the reported "+string(target)+" does not exist")
	}

	c := models.Complaint{
		ID:          utils.GenerateID(),
		Author:      models.Creator{Kind: caller.Role, Identity: caller.Identity},
		TargetKind:  target,
		TargetID:    targetID,
		TargetName:  name,
		Subject:     subject,
		Description: description,
		Severity:    severity,
		Status:      models.ComplaintPending,
		Attachment:  in.Attachment,
		CreatedAt:   s.now(),
	}
	if err := s.store.InsertComplaint(ctx, c); err != nil {
		return models.Complaint{}, fmt.Errorf("service: failed to file complaint for %s: %w", caller.Identity, err)
	}
	return c, nil
}

// Mine lists the complaints caller filed, newest first
func (s *ComplaintService) Mine(ctx context.Context, caller models.Caller) ([]models.Complaint, error) {
	list, err := s.store.FindComplaints(ctx, repository.ComplaintFilter{Author: caller.Identity})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list complaints of %s: %w", caller.Identity, err)
	}
	return list, nil
}

// List returns complaints for admin review
func (s *ComplaintService) List(ctx context.Context, f Filter) ([]models.Complaint, error) {
	var filter repository.ComplaintFilter
	if f.Status != "" {
		st, ok := models.ParseComplaintStatus(f.Status)
		if !ok {
			return nil, marketerrors.WithDetail(marketerrors.ErrInvalidStatus, "unknown complaint status "+f.Status)
		}
		filter.Status = st
	}
	if f.Severity != "" {
		sv, ok := models.ParseSeverity(f.Severity)
		if !ok {
			return nil, marketerrors.WithDetail(marketerrors.ErrInvalidInput, "severity must be low, medium or high")
		}
		filter.Severity = sv
	}

	list, err := s.store.FindComplaints(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list complaints: %w", err)
	}
	return list, nil
}

// Get returns one complaint
func (s *ComplaintService) Get(ctx context.Context, id string) (models.Complaint, error) {
	c, err := s.store.GetComplaint(ctx, id)
	if err != nil {
		return models.Complaint{}, fmt.Errorf("service: failed to get complaint %s: %w", id, err)
	}
	return c, nil
}

// ChangeStatus moves a complaint along pending -> in_progress -> resolved or rejected.
// Resolved and rejected complaints are final.
func (s *ComplaintService) ChangeStatus(ctx context.Context, admin models.Caller, id, status, response string) (models.Complaint, error) {
	to, ok := models.ParseComplaintStatus(status)
	if !ok {
		return models.Complaint{}, marketerrors.WithDetail(marketerrors.ErrInvalidStatus, "status must be in_progress, resolved or rejected")
	}
	from := models.ComplaintSourcesFor(to)
	if len(from) == 0 {
		return models.Complaint{}, marketerrors.WithDetail(marketerrors.ErrInvalidTransition, "a complaint cannot move back to "+string(to))
	}

	c, err := s.store.SetComplaintStatus(ctx, id, repository.ComplaintStatusChange{
		To:       to,
		From:     from,
		By:       admin.Identity,
		At:       s.now(),
		Response: strings.TrimSpace(response),
	})
	if errors.Is(err, marketerrors.ErrInvalidTransition) {
		current, getErr := s.store.GetComplaint(ctx, id)
		if getErr == nil {
			err = marketerrors.WithDetail(err, fmt.Sprintf("complaint is %s and cannot move to %s", current.Status, to))
		}
	}
	if err != nil {
		return models.Complaint{}, fmt.Errorf("service: failed to set complaint %s to %s: %w", id, to, err)
	}

	utils.Info("Complaint status changed", map[string]any{"complaint_id": id, "status": to, "admin": admin.Identity})
	return c, nil
}
