// Package certificate renders completion certificates for students who
// finished the full curriculum.
package certificate

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/pytutor/internal/engine"
	"github.com/abhisek/pytutor/internal/ui/theme"
)

// Certificate is an issued completion certificate.
type Certificate struct {
	// Serial uniquely identifies this issuance.
	Serial string

	// DisplayName is the student name printed on the certificate.
	DisplayName string

	// Points is the point total at issuance.
	Points int

	// LessonsCompleted is the pass count at issuance.
	LessonsCompleted int

	// IssuedAt is when the certificate was produced.
	IssuedAt time.Time
}

// Issuer mints certificates from completion artifacts.
type Issuer struct {
	newSerial func() string
	clock     func() time.Time
}

// NewIssuer creates an issuer with a UUID serial source.
func NewIssuer() *Issuer {
	return &Issuer{
		newSerial: func() string { return uuid.NewString() },
		clock:     time.Now,
	}
}

// Issue mints a certificate for a completion artifact.
func (i *Issuer) Issue(req engine.ArtifactRequest) Certificate {
	name := req.DisplayName
	if name == "" {
		name = req.UserID
	}
	return Certificate{
		Serial:           i.newSerial(),
		DisplayName:      name,
		Points:           req.Points,
		LessonsCompleted: req.LessonsCompleted,
		IssuedAt:         i.clock().UTC(),
	}
}

var (
	certFrame = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(theme.Secondary).
			Padding(1, 4).
			Align(lipgloss.Center)

	certName = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary)

	certSerial = lipgloss.NewStyle().
			Foreground(theme.TextDim)
)

// Render produces the terminal presentation of a certificate.
func Render(c Certificate) string {
	var b strings.Builder
	b.WriteString("CERTIFICATE OF COMPLETION\n\n")
	b.WriteString("This certifies that\n")
	b.WriteString(certName.Render(c.DisplayName))
	b.WriteString("\n\ncompleted the Python basics course\n")
	b.WriteString(fmt.Sprintf("%d lessons passed · %d points earned\n\n", c.LessonsCompleted, c.Points))
	b.WriteString(c.IssuedAt.Format("January 2, 2006"))
	b.WriteString("\n")
	b.WriteString(certSerial.Render("serial " + c.Serial))
	return certFrame.Render(b.String())
}
