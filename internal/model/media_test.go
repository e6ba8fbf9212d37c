package model

import (
	"errors"
	"testing"
)

func TestParseMediaType(t *testing.T) {
	tests := []struct {
		in      string
		want    MediaType
		wantErr bool
	}{
		{"audio", MediaTypeAudio, false},
		{"mp3", MediaTypeAudio, false},
		{" Video ", MediaTypeVideo, false},
		{"invalid_type", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMediaType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMediaType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMediaType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseMediaCompany(t *testing.T) {
	if c, err := ParseMediaCompany("youtube"); err != nil || c != CompanyYouTube {
		t.Errorf("ParseMediaCompany(youtube) = %q, %v", c, err)
	}
	if c, err := ParseMediaCompany("SoundCloud"); err != nil || c != CompanySoundCloud {
		t.Errorf("ParseMediaCompany(SoundCloud) = %q, %v", c, err)
	}
	if _, err := ParseMediaCompany("other"); err == nil {
		t.Error("expected error for unknown company")
	}
}

func TestMediaType_Extensions(t *testing.T) {
	if exts := MediaTypeAudio.Extensions(); len(exts) != 1 || exts[0] != ".mp3" {
		t.Errorf("unexpected audio extensions: %v", exts)
	}
	if exts := MediaTypeVideo.Extensions(); len(exts) == 0 || exts[0] != ".mp4" {
		t.Errorf("unexpected video extensions: %v", exts)
	}
	if exts := MediaType("bogus").Extensions(); exts != nil {
		t.Errorf("expected nil extensions for unknown type, got %v", exts)
	}
}

func TestError_KindAndExitCode(t *testing.T) {
	base := errors.New("no such folder")
	err := NewError(KindFilesystem, "place files", base)

	if !IsKind(err, KindFilesystem) {
		t.Error("expected filesystem kind")
	}
	if IsKind(err, KindValidation) {
		t.Error("did not expect validation kind")
	}
	if !errors.Is(err, base) {
		t.Error("expected wrapped error to be reachable through errors.Is")
	}

	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("expected *Error")
	}
	if e.ExitCode() != 5 {
		t.Errorf("expected exit code 5, got %d", e.ExitCode())
	}
	if err.Error() != "place files: no such folder" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	if v := Validationf("validate url", "bad url %q", "x"); !IsKind(v, KindValidation) {
		t.Error("Validationf should build a validation error")
	}
}
