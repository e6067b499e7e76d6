package metadata_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mydehq/exifname/internal/metadata"
)

const sampleDump = `======== IMG_1234.JPG
ExifTool Version Number         : 12.76
File Name                       : IMG_1234.JPG
Make                            : Canon
Camera Model Name               : Canon EOS 5D
Date/Time Original              : 2023:07:04 15:08:09
Create Date                     : 2023:07:04 15:08:10

    1 image files read
`

func TestParseString(t *testing.T) {
	rec := metadata.ParseString(sampleDump)

	tests := []struct {
		tag  string
		want string
	}{
		{"ExifTool Version Number", "12.76"},
		{"File Name", "IMG_1234.JPG"},
		{"Make", "Canon"},
		{"Camera Model Name", "Canon EOS 5D"},
		{"Date/Time Original", "2023:07:04 15:08:09"},
		{"Create Date", "2023:07:04 15:08:10"},
	}

	for _, tt := range tests {
		got, ok := rec.Get(tt.tag)
		if !ok {
			t.Errorf("Get(%q) missing", tt.tag)
			continue
		}
		if got != tt.want {
			t.Errorf("Get(%q) = %q; want %q", tt.tag, got, tt.want)
		}
	}

	if rec.Len() != len(tests) {
		t.Errorf("Len() = %d; want %d (preamble and summary lines must be skipped)", rec.Len(), len(tests))
	}
}

func TestParse_DuplicateTagLastWins(t *testing.T) {
	dump := "Model : first\nModel : second\n"
	rec, err := metadata.Parse(strings.NewReader(dump))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got, _ := rec.Get("Model"); got != "second" {
		t.Errorf("Get(Model) = %q; want %q", got, "second")
	}
}

func TestParse_Lines(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantTag string
		wantVal string
		wantOK  bool
	}{
		{"padded long form", "Date/Time Original              : 2023:07:04 15:08:09", "Date/Time Original", "2023:07:04 15:08:09", true},
		{"short form", "CreateDate: 2023:09:08 18:56:54", "CreateDate", "2023:09:08 18:56:54", true},
		{"value with colon and space", "Comment : note: keep", "Comment", "note: keep", true},
		{"tab after colon", "Model :\tiPhone 14", "Model", "iPhone 14", true},
		{"crlf ending", "Model : iPhone 14\r", "Model", "iPhone 14", true},
		{"no whitespace after colon", "Time:12:00", "", "", false},
		{"blank", "", "", "", false},
		{"preamble", "======== IMG_0001.JPG", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := metadata.ParseString(tt.line)
			if !tt.wantOK {
				if rec.Len() != 0 {
					t.Errorf("expected line to be skipped, got %v", rec.Tags())
				}
				return
			}
			got, ok := rec.Get(tt.wantTag)
			if !ok || got != tt.wantVal {
				t.Errorf("Get(%q) = %q, %v; want %q", tt.wantTag, got, ok, tt.wantVal)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	rec, err := metadata.Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if rec.Len() != 0 {
		t.Errorf("Len() = %d; want 0", rec.Len())
	}
	if _, ok := rec.Lookup(metadata.TagDateTimeOriginal); ok {
		t.Error("Lookup on empty record should fail")
	}
}

func TestParse_NoTrailingNewline(t *testing.T) {
	rec, err := metadata.Parse(strings.NewReader("Make : Nikon\nModel : D850"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got, _ := rec.Get("Model"); got != "D850" {
		t.Errorf("Get(Model) = %q; want %q", got, "D850")
	}
}

func TestLookup_Aliases(t *testing.T) {
	tests := []struct {
		name string
		dump string
		tag  string
		want string
	}{
		{"long form preferred", "CreateDate : 2020:01:01 00:00:00\nDate/Time Original : 2021:01:01 00:00:00", metadata.TagDateTimeOriginal, "2021:01:01 00:00:00"},
		{"create date fallback", "Create Date : 2019:05:05 10:10:10", metadata.TagDateTimeOriginal, "2019:05:05 10:10:10"},
		{"short create date", "CreateDate : 2023:09:08 18:56:54", metadata.TagDateTimeOriginal, "2023:09:08 18:56:54"},
		{"short model", "Model : iPhone 14", metadata.TagCameraModel, "iPhone 14"},
		{"short filename", "FileName : IMG_9876.JPG", metadata.TagFileName, "IMG_9876.JPG"},
		{"non canonical tag", "Make : Sony", "Make", "Sony"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := metadata.ParseString(tt.dump).Lookup(tt.tag)
			if !ok || got != tt.want {
				t.Errorf("Lookup(%q) = %q, %v; want %q", tt.tag, got, ok, tt.want)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "IMG_1234.txt")
	if err := os.WriteFile(path, []byte(sampleDump), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rec, err := metadata.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if got, _ := rec.Lookup(metadata.TagCameraModel); got != "Canon EOS 5D" {
		t.Errorf("Lookup(camera) = %q", got)
	}

	if _, err := metadata.ParseFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("ParseFile() on missing file should fail")
	}
}

func TestTagsIsCopy(t *testing.T) {
	rec := metadata.FromMap(map[string]string{"Model": "X100V"})
	tags := rec.Tags()
	tags["Model"] = "changed"
	if got, _ := rec.Get("Model"); got != "X100V" {
		t.Errorf("record mutated through Tags(): %q", got)
	}
}
