package seed

import (
	"context"
	"fmt"
	"image"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gophcontacts/internal/client/models"
	"github.com/dmitrijs2005/gophcontacts/internal/logging"
	"github.com/dmitrijs2005/gophcontacts/internal/outcome"
	"github.com/google/uuid"
)

var (
	firstNames = []string{
		"Arne", "Berta", "Cord", "Dagmar", "Ernst", "Frieda", "Günter", "Hanna",
		"Ingo", "Johanna", "Klaus", "Luise", "Martin", "Nadja", "Otto", "Patrizia",
		"Quirin", "Rebecca", "Stefan", "Tanja", "Uwe", "Veronika", "Walter", "Xaver",
		"Yvonne", "Zwantje",
	}
	lastNames = []string{
		"Arndt", "Bauer", "Conrad", "Diehl", "Engel", "Fischer", "Graf", "Hoffmann",
		"Imhoff", "Jung", "Klein", "Lang", "Meier", "Neumann", "Olbrich", "Peters",
		"Quart", "Richter", "Schmidt", "Thormann", "Ulrich", "Vogel", "Wagner", "Xander",
		"Yakov", "Zander",
	}
	emailProviders = []string{
		"gmail.com", "icloud.com", "outlook.com", "yahoo.com", "t-online.de",
		"gmx.de", "freenet.de", "mailbox.org", "yahoo.com", "web.de",
	}

	// imageForPerson[person] is the index of the avatar written for them.
	imageForPerson = []int{0, 6, 1, 7, 2, 8, 3, 9, 4, 10, 5}

	personNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("gophcontacts:people"))
)

const rosterSeed = 0

// ImageFiles writes rendered images to, and removes them from, the local
// file store.
type ImageFiles interface {
	WriteImage(ctx context.Context, img image.Image) outcome.Outcome[string]
	DeleteFile(ctx context.Context, path string) outcome.Outcome[bool]
}

// Seed builds the fixed demo roster.
type Seed struct {
	files  ImageFiles
	logger logging.Logger

	mu     sync.Mutex
	images []string
}

func New(files ImageFiles, l logging.Logger) *Seed {
	return &Seed{files: files, logger: l.With("module", "seed")}
}

// PersonID returns the stable id of the roster entry at index.
func PersonID(index int) string {
	return uuid.NewSHA1(personNamespace, []byte(fmt.Sprintf("person-%d", index+1))).String()
}

// CreatePeople returns the 26 roster entries. The output is identical on
// every call. With images, the bundled portraits are written to the file
// store and attached by a fixed mapping, but only when all of them were
// written.
func (s *Seed) CreatePeople(ctx context.Context, withImages bool) []models.Person {
	rng := rand.New(rand.NewPCG(rosterSeed, rosterSeed))

	people := make([]models.Person, 0, len(firstNames))
	for i, first := range firstNames {
		last := lastNames[i]
		email := fmt.Sprintf("%s.%s@%s",
			strings.ToLower(first), strings.ToLower(last), emailProviders[rng.IntN(len(emailProviders))])
		phone := fmt.Sprintf("0%d %d-%d",
			between(rng, 1234, 9999), between(rng, 100, 999), between(rng, 10, 9999))

		p := models.Person{
			ID:        PersonID(i),
			FirstName: first,
			LastName:  last,
			Email:     email,
			Phone:     phone,
		}
		s.logger.Debug(ctx, "roster entry", "id", p.ID, "name", p.FullName())
		people = append(people, p)
	}

	if !withImages {
		return people
	}

	paths := s.writeImages(ctx)
	if len(paths) != len(avatars) {
		s.logger.Warn(ctx, "not all images written, people keep no photo",
			"written", len(paths), "expected", len(avatars))
		return people
	}
	for person, img := range imageForPerson {
		people[person] = people[person].WithLocalImage(paths[img])
	}
	return people
}

func (s *Seed) writeImages(ctx context.Context) []string {
	paths := make([]string, 0, len(avatars))
	for _, a := range avatars {
		res := s.files.WriteImage(ctx, a.render())
		path, err := res.Get()
		if err != nil {
			s.logger.Error(ctx, "image not written", "image", a.name, "error", err)
			continue
		}
		paths = append(paths, path)
	}

	s.mu.Lock()
	s.images = append(s.images, paths...)
	s.mu.Unlock()
	return paths
}

// DisposeImages deletes every image file written so far.
func (s *Seed) DisposeImages(ctx context.Context) {
	s.mu.Lock()
	paths := s.images
	s.images = nil
	s.mu.Unlock()

	for _, p := range paths {
		if _, err := s.files.DeleteFile(ctx, p).Get(); err != nil {
			s.logger.Warn(ctx, "image not deleted", "path", p, "error", err)
		}
	}
}

// between returns a value in [lo, hi).
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo)
}
