package mail

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// TripConfirmation is the data for the email sent to the trip owner right
// after trip creation, asking them to confirm the trip.
type TripConfirmation struct {
	OwnerName       string
	OwnerEmail      string
	Destination     string
	StartsAt        time.Time
	EndsAt          time.Time
	ConfirmationURL string
}

// ParticipantInvite is the data for the email sent to an invited participant,
// asking them to confirm their presence on the trip.
type ParticipantInvite struct {
	Name            string
	Email           string
	Destination     string
	StartsAt        time.Time
	EndsAt          time.Time
	ConfirmationURL string
}

var tripConfirmationTmpl = template.Must(template.New("trip_confirmation").Parse(strings.TrimSpace(`
<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">
<p>You requested the creation of a trip to <strong>{{.Destination}}</strong> from <strong>{{.StartsAt}}</strong> to <strong>{{.EndsAt}}</strong>.</p>
<p></p>
<p>To confirm your trip, click the link below:</p>
<p></p>
<p>
    <a href="{{.ConfirmationURL}}">Confirm trip</a>
</p>
<p></p>
<p>If you don't know what this email is about, just ignore it.</p>
</div>
`)))

var participantInviteTmpl = template.Must(template.New("participant_invite").Parse(strings.TrimSpace(`
<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">
<p>You have been invited to join a trip to <strong>{{.Destination}}</strong> from <strong>{{.StartsAt}}</strong> to <strong>{{.EndsAt}}</strong>.</p>
<p></p>
<p>To confirm your presence, click the link below:</p>
<p></p>
<p>
    <a href="{{.ConfirmationURL}}">Confirm presence</a>
</p>
<p></p>
<p>If you don't know what this email is about, just ignore it.</p>
</div>
`)))

// NewTripConfirmation renders the owner confirmation message.
func NewTripConfirmation(tc TripConfirmation) (Message, error) {
	var body strings.Builder
	err := tripConfirmationTmpl.Execute(&body, struct {
		Destination     string
		StartsAt        string
		EndsAt          string
		ConfirmationURL string
	}{tc.Destination, formatLongDate(tc.StartsAt), formatLongDate(tc.EndsAt), tc.ConfirmationURL})
	if err != nil {
		return Message{}, fmt.Errorf("mail.NewTripConfirmation: %w", err)
	}

	return Message{
		To:      Address{Name: tc.OwnerName, Email: tc.OwnerEmail},
		Subject: fmt.Sprintf("Confirm your trip to %s on %s", tc.Destination, formatLongDate(tc.StartsAt)),
		HTML:    body.String(),
	}, nil
}

// NewParticipantInvite renders the invite message for a single participant.
func NewParticipantInvite(pi ParticipantInvite) (Message, error) {
	var body strings.Builder
	err := participantInviteTmpl.Execute(&body, struct {
		Destination     string
		StartsAt        string
		EndsAt          string
		ConfirmationURL string
	}{pi.Destination, formatLongDate(pi.StartsAt), formatLongDate(pi.EndsAt), pi.ConfirmationURL})
	if err != nil {
		return Message{}, fmt.Errorf("mail.NewParticipantInvite: %w", err)
	}

	return Message{
		To:      Address{Name: pi.Name, Email: pi.Email},
		Subject: fmt.Sprintf("Confirm your presence on the trip to %s on %s", pi.Destination, formatLongDate(pi.StartsAt)),
		HTML:    body.String(),
	}, nil
}

// formatLongDate renders a date the way the emails display it, e.g.
// "January 2, 2006".
func formatLongDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
