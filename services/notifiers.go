package services

import (
	"context"

	"notification-hub/domain"
)

// One call per domain event. Each builds the payload and hands it to
// CreateNotification or NotifyUsers.

func (s *NotificationService) NotifyJobMatch(ctx context.Context, userID domain.UserID, job domain.JobMatch) (bool, error) {
	return s.CreateNotification(ctx, domain.NewJobMatch(userID, job))
}

func (s *NotificationService) NotifyResumeAnalysisComplete(ctx context.Context, userID domain.UserID, resumeID string, atsScore int) (bool, error) {
	return s.CreateNotification(ctx, domain.NewResumeAnalysis(userID, resumeID, atsScore))
}

func (s *NotificationService) NotifySessionReminder(ctx context.Context, userID domain.UserID, session domain.CounselingSession) (bool, error) {
	return s.CreateNotification(ctx, domain.NewSessionReminder(userID, session, s.now()))
}

func (s *NotificationService) NotifyApplicationUpdate(ctx context.Context, userID domain.UserID, update domain.ApplicationUpdateData) (bool, error) {
	return s.CreateNotification(ctx, domain.NewApplicationUpdate(userID, update))
}

func (s *NotificationService) NotifyCounselorMessage(ctx context.Context, userID domain.UserID, msg domain.CounselorMessageData, preview string) (bool, error) {
	return s.CreateNotification(ctx, domain.NewCounselorMessage(userID, msg, preview))
}

// NotifyCounselorStudents sends the same update to every student of a counselor.
func (s *NotificationService) NotifyCounselorStudents(ctx context.Context, counselorID string, studentIDs []domain.UserID, message string) (domain.DeliveryReport, error) {
	return s.NotifyUsers(ctx, studentIDs, domain.NewCounselorUpdate(counselorID, message))
}
