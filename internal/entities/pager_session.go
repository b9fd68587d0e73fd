package entities

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// PagerSession is one paginated message: its pages, the page on screen and
// the user allowed to turn them
type PagerSession struct {
	ID        string
	OwnerID   string
	Pages     []*discordgo.MessageEmbed
	Index     int
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
}

// PageCount returns the number of pages
func (s *PagerSession) PageCount() int {
	return len(s.Pages)
}

// Current returns the page on screen
func (s *PagerSession) Current() *discordgo.MessageEmbed {
	if len(s.Pages) == 0 {
		return nil
	}
	return s.Pages[s.clamp(s.Index)]
}

// Goto moves to page index, clamped to the valid range, and reports whether it moved
func (s *PagerSession) Goto(index int) bool {
	next := s.clamp(index)
	moved := next != s.Index
	s.Index = next
	return moved
}

// IsOwner reports whether userID may navigate this session
func (s *PagerSession) IsOwner(userID string) bool {
	return s.OwnerID == userID
}

// Expired reports whether the session is past its expiry; a zero expiry never expires
func (s *PagerSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

func (s *PagerSession) clamp(index int) int {
	if index < 0 {
		return 0
	}
	if last := len(s.Pages) - 1; index > last {
		if last < 0 {
			return 0
		}
		return last
	}
	return index
}
