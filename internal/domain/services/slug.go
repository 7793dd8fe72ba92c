package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

/*
	Service slug helpers
	--------------------
	- Responsible ONLY for:
	  • generating slugs from titles
	  • resolving collisions against the repository
	- No pricing or catalog logic here
*/

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

const maxSlugAttempts = 50

// MakeSlug generates a URL-safe base slug from a title.
// Example: "Vastu for Home" -> "vastu-for-home"
func MakeSlug(title string) string {
	base := strings.ToLower(strings.TrimSpace(title))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		base = "service"
	}
	return base
}

// EnsureSlug sets s.Slug to a free slug derived from the title.
// An existing slug is kept if no other service uses it.
func EnsureSlug(ctx context.Context, repo Repository, s *Service) error {
	if s == nil {
		return fmt.Errorf("service is nil")
	}

	base := strings.TrimSpace(s.Slug)
	if base == "" {
		base = MakeSlug(s.Title)
	} else {
		base = MakeSlug(base)
	}

	candidate := base
	for i := 2; i <= maxSlugAttempts+1; i++ {
		taken, err := repo.SlugTaken(ctx, candidate, s.ID)
		if err != nil {
			return err
		}
		if !taken {
			s.Slug = candidate
			return nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return fmt.Errorf("no free slug for %q after %d attempts", base, maxSlugAttempts)
}
