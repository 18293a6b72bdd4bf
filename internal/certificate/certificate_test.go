package certificate

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/pytutor/internal/engine"
)

func testIssuer() *Issuer {
	return &Issuer{
		newSerial: func() string { return "serial-123" },
		clock:     func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestIssue(t *testing.T) {
	cert := testIssuer().Issue(engine.ArtifactRequest{
		UserID:           "u1",
		DisplayName:      "Ada",
		Points:           15,
		LessonsCompleted: 3,
	})

	if cert.Serial != "serial-123" {
		t.Errorf("serial = %q", cert.Serial)
	}
	if cert.DisplayName != "Ada" || cert.Points != 15 || cert.LessonsCompleted != 3 {
		t.Errorf("certificate = %+v", cert)
	}
	if !cert.IssuedAt.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("issued at = %v", cert.IssuedAt)
	}
}

func TestIssueFallsBackToUserID(t *testing.T) {
	cert := testIssuer().Issue(engine.ArtifactRequest{UserID: "u1"})
	if cert.DisplayName != "u1" {
		t.Errorf("display name = %q, want u1", cert.DisplayName)
	}
}

func TestIssuerGeneratesUniqueSerials(t *testing.T) {
	issuer := NewIssuer()
	a := issuer.Issue(engine.ArtifactRequest{UserID: "u1"})
	b := issuer.Issue(engine.ArtifactRequest{UserID: "u1"})
	if a.Serial == "" || a.Serial == b.Serial {
		t.Errorf("serials not unique: %q, %q", a.Serial, b.Serial)
	}
}

func TestRender(t *testing.T) {
	out := Render(testIssuer().Issue(engine.ArtifactRequest{
		DisplayName:      "Ada",
		Points:           15,
		LessonsCompleted: 3,
	}))

	for _, want := range []string{"CERTIFICATE OF COMPLETION", "Ada", "3 lessons", "15 points", "June 1, 2025", "serial-123"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered certificate missing %q", want)
		}
	}
}
