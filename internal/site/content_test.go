package site

import (
	"fmt"
	"testing"
)

// The slide sources and page images are the paths the published site serves
// from its asset host; they are load-bearing and must not drift.
func TestSlideSources(t *testing.T) {
	slides := Slides()
	if len(slides) != 5 {
		t.Fatalf("got %d slides, want 5", len(slides))
	}
	for i, s := range slides {
		want := fmt.Sprintf("img/slides/%d.jpg", i+1)
		if s.Src != want {
			t.Errorf("slide %d src = %q, want %q", i, s.Src, want)
		}
		if s.Caption == "" {
			t.Errorf("slide %d has no caption", i)
		}
	}
}

func TestPageImages(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"cover", CoverImage, "img/Cover.png"},
		{"reception", ReceptionImage, "img/Reception.jpg"},
		{"contact", ContactImage, "img/Contact.jpg"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s image = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestSongsHaveTitles(t *testing.T) {
	for i, s := range Songs() {
		if s.Title == "" || s.Artist == "" || s.Moment == "" {
			t.Errorf("song %d is incomplete: %+v", i, s)
		}
	}
}
