package domain

import (
	"fmt"
	"math"
	"time"
)

// Payload builders for the domain events that produce notifications.

type JobMatch struct {
	JobID      string
	Title      string
	Company    string
	MatchScore float64
}

func NewJobMatch(userID UserID, job JobMatch) Notification {
	return NewNotification(userID, KindJobMatch,
		"New Job Match Found!",
		fmt.Sprintf("We found a %s%% match for %q at %s", formatScore(job.MatchScore), job.Title, job.Company),
		JobMatchData{JobID: job.JobID, MatchScore: job.MatchScore},
	)
}

func NewResumeAnalysis(userID UserID, resumeID string, atsScore int) Notification {
	return NewNotification(userID, KindResumeAnalysis,
		"Resume Analysis Complete",
		fmt.Sprintf("Your resume analysis is ready! ATS Score: %d/100", atsScore),
		ResumeAnalysisData{ResumeID: resumeID, ATSScore: atsScore},
	)
}

type CounselingSession struct {
	ID          string
	Title       string
	ScheduledAt time.Time
}

// NewSessionReminder announces how many minutes remain before the session,
// measured from now.
func NewSessionReminder(userID UserID, session CounselingSession, now time.Time) Notification {
	minutes := int(math.Round(session.ScheduledAt.Sub(now).Minutes()))
	return NewNotification(userID, KindSessionReminder,
		"Counseling Session Reminder",
		fmt.Sprintf("Your session %q starts in %d minutes", session.Title, minutes),
		SessionReminderData{SessionID: session.ID, ScheduledAt: session.ScheduledAt},
	).WithPriority(PriorityHigh)
}

var applicationStatusMessages = map[ApplicationStatus]string{
	ApplicationReviewing: "Your application is being reviewed",
	ApplicationInterview: "Congratulations! You have an interview scheduled",
	ApplicationOffer:     "Great news! You received a job offer",
	ApplicationRejected:  "Application status updated",
}

func NewApplicationUpdate(userID UserID, update ApplicationUpdateData) Notification {
	message, ok := applicationStatusMessages[update.Status]
	if !ok {
		message = "Your application status has been updated"
	}
	priority := PriorityMedium
	if update.Status == ApplicationOffer {
		priority = PriorityUrgent
	}
	return NewNotification(userID, KindApplicationUpdate,
		"Application Status Update", message, update,
	).WithPriority(priority)
}

func NewCounselorMessage(userID UserID, msg CounselorMessageData, preview string) Notification {
	return NewNotification(userID, KindCounselorMessage,
		"New Message from Your Counselor",
		fmt.Sprintf("%s: %s", msg.CounselorName, preview),
		msg,
	)
}

// NewCounselorUpdate is sent to every student of a counselor at once,
// so it is used as a template with ForUser.
func NewCounselorUpdate(counselorID, message string) Notification {
	return NewNotification("", KindCounselorMessage,
		"Update from Your Counselor", message,
		CounselorMessageData{CounselorID: counselorID},
	)
}

func NewSystemAnnouncement(title, message string, priority Priority, attributes map[string]string) Notification {
	var data NotificationData
	if len(attributes) > 0 {
		data = AnnouncementData{Attributes: attributes}
	}
	return NewNotification("", KindSystemAnnouncement, title, message, data).
		WithPriority(priority)
}

func formatScore(score float64) string {
	if score == math.Trunc(score) {
		return fmt.Sprintf("%.0f", score)
	}
	return fmt.Sprintf("%.1f", score)
}
