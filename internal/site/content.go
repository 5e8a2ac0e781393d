// Package site holds the fixed content the pages render: copy, the
// carousel slides, the set list, and the image asset paths carried over
// from the published site.
package site

// Brand and contact details shown across pages.
const (
	Brand   = "Ravelnze"
	Tagline = "Live music & DJ for your wedding"
	Email   = "bookings@ravelnze.com"
	Phone   = "0400 123 456"
)

// Image asset paths. The terminal renders captions rather than pixels, but
// the paths are kept verbatim: they are the contract with the static asset
// host the published site points at.
const (
	CoverImage     = "img/Cover.png"
	ReceptionImage = "img/Reception.jpg"
	ContactImage   = "img/Contact.jpg"
)

// Slide is one frame of the music page carousel.
type Slide struct {
	Caption string
	Src     string
}

// Slides returns the carousel frames in play order.
func Slides() []Slide {
	return []Slide{
		{Caption: "Acoustic set during canapés", Src: "img/slides/1.jpg"},
		{Caption: "First dance, strings and keys", Src: "img/slides/2.jpg"},
		{Caption: "Full band, floor packed", Src: "img/slides/3.jpg"},
		{Caption: "Late set behind the decks", Src: "img/slides/4.jpg"},
		{Caption: "Last song of the night", Src: "img/slides/5.jpg"},
	}
}

// Song is one entry in the repertoire set list on the music page.
type Song struct {
	Title  string
	Artist string
	Moment string
}

// Songs returns the sample set list, grouped loosely by the moment of the
// day each is usually played at.
func Songs() []Song {
	return []Song{
		{Title: "A Thousand Years", Artist: "Christina Perri", Moment: "Ceremony"},
		{Title: "Canon in D", Artist: "Pachelbel", Moment: "Ceremony"},
		{Title: "Here Comes the Sun", Artist: "The Beatles", Moment: "Ceremony"},
		{Title: "Better Together", Artist: "Jack Johnson", Moment: "Canapés"},
		{Title: "Banana Pancakes", Artist: "Jack Johnson", Moment: "Canapés"},
		{Title: "Fly Me to the Moon", Artist: "Frank Sinatra", Moment: "Dinner"},
		{Title: "La Vie en Rose", Artist: "Édith Piaf", Moment: "Dinner"},
		{Title: "Perfect", Artist: "Ed Sheeran", Moment: "First dance"},
		{Title: "Thinking Out Loud", Artist: "Ed Sheeran", Moment: "First dance"},
		{Title: "At Last", Artist: "Etta James", Moment: "First dance"},
		{Title: "September", Artist: "Earth, Wind & Fire", Moment: "Party"},
		{Title: "Mr. Brightside", Artist: "The Killers", Moment: "Party"},
		{Title: "Dancing Queen", Artist: "ABBA", Moment: "Party"},
		{Title: "Uptown Funk", Artist: "Mark Ronson ft. Bruno Mars", Moment: "Party"},
		{Title: "Never Gonna Give You Up", Artist: "Rick Astley", Moment: "Party"},
	}
}

// HomeIntro is the hero copy on the landing page.
func HomeIntro() []string {
	return []string{
		"One musician, two decks, and a room full of people you love.",
		"Acoustic sets for the ceremony, a live band feel for dinner,",
		"and a DJ set that keeps the floor moving until close.",
	}
}

// ReceptionCopy is the long-form prose on the reception page, scrolled in a
// viewport when it outgrows the window.
func ReceptionCopy() string {
	return `How the night usually runs

Arrival & canapés
  Unplugged acoustic covers while guests arrive. Low volume, easy
  conversation, requests welcome.

Entrances
  Your wedding party announced over whatever track you pick. We cue it,
  mix it, and hand straight over to dinner music.

Dinner
  Jazz and soul standards at talking volume. Speeches run through our
  rig, with a wireless microphone for the nervous and the loud alike.

First dance
  Performed live where the song suits it, or the original recording
  mixed in. Either way the lights come down and the room goes quiet.

Party sets
  Two DJ sets back to back, read off the floor rather than a fixed list.
  We carry the full rig: PA, lighting, and a backup of everything.

Pack down
  We are out within the hour, quietly. The venue will not know we were
  there, except for the glitter.`
}

// ContactIntro is the short lead-in above the contact form.
func ContactIntro() []string {
	return []string{
		"Tell us about your day and we will come back with a quote",
		"within two working days.",
	}
}
