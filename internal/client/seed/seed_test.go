package seed

import (
	"context"
	"regexp"
	"testing"

	"github.com/dmitrijs2005/gophcontacts/internal/client/models"
	"github.com/dmitrijs2005/gophcontacts/internal/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	phonePattern = regexp.MustCompile(`^0\d{4} \d{3}-\d{2,4}$`)
	emailPattern = regexp.MustCompile(`^[^.@]+\.[^.@]+@[a-z.-]+$`)
)

func TestCreatePeople_Roster(t *testing.T) {
	s := New(&fakeFiles{}, logging.Discard())
	people := s.CreatePeople(context.Background(), false)

	require.Len(t, people, 26)
	assert.Equal(t, "Arne Arndt", people[0].FullName())
	assert.Equal(t, "Zwantje Zander", people[25].FullName())
	assert.Equal(t, "Günter", people[6].FirstName)

	ids := map[string]bool{}
	for i, p := range people {
		_, err := uuid.Parse(p.ID)
		require.NoError(t, err)
		assert.Equal(t, PersonID(i), p.ID)
		ids[p.ID] = true

		assert.Regexp(t, phonePattern, p.Phone)
		assert.Regexp(t, emailPattern, p.Email)
		assert.Nil(t, p.LocalImage)
		assert.Nil(t, p.RemoteImage)
		assert.NoError(t, p.Validate(), p.FullName())
	}
	assert.Len(t, ids, 26)
	assert.Contains(t, people[0].Email, "arne.arndt@")
}

func TestCreatePeople_Deterministic(t *testing.T) {
	a := New(&fakeFiles{}, logging.Discard()).CreatePeople(context.Background(), false)
	b := New(&fakeFiles{}, logging.Discard()).CreatePeople(context.Background(), false)
	assert.Equal(t, a, b)

	s := New(&fakeFiles{}, logging.Discard())
	assert.Equal(t, s.CreatePeople(context.Background(), false), s.CreatePeople(context.Background(), false))
}

func TestCreatePeople_AttachesImagesByMapping(t *testing.T) {
	files := &fakeFiles{}
	people := New(files, logging.Discard()).CreatePeople(context.Background(), true)

	require.Len(t, files.written, 11)
	want := map[int]int{0: 0, 1: 6, 2: 1, 3: 7, 4: 2, 5: 8, 6: 3, 7: 9, 8: 4, 9: 10, 10: 5}
	for i, p := range people {
		if img, ok := want[i]; ok {
			require.NotNil(t, p.LocalImage, "person %d", i)
			assert.Equal(t, files.written[img], *p.LocalImage, "person %d", i)
			assert.Equal(t, models.ImageLocalOnly, p.ImageState())
			continue
		}
		assert.Nil(t, p.LocalImage, "person %d", i)
	}
}

func TestCreatePeople_NoImagesWhenAWriteFails(t *testing.T) {
	files := &fakeFiles{failAt: 5}
	people := New(files, logging.Discard()).CreatePeople(context.Background(), true)

	assert.Equal(t, 11, files.writes, "remaining images are still attempted")
	assert.Len(t, files.written, 10)
	for _, p := range people {
		assert.Nil(t, p.LocalImage)
	}
}

func TestCreatePeople_ImagesDoNotChangeFields(t *testing.T) {
	plain := New(&fakeFiles{}, logging.Discard()).CreatePeople(context.Background(), false)
	withImages := New(&fakeFiles{}, logging.Discard()).CreatePeople(context.Background(), true)

	for i := range plain {
		assert.Equal(t, plain[i], withImages[i].WithLocalImage(""))
	}
}

func TestDisposeImages(t *testing.T) {
	files := &fakeFiles{}
	s := New(files, logging.Discard())
	s.CreatePeople(context.Background(), true)

	s.DisposeImages(context.Background())
	assert.ElementsMatch(t, files.written, files.deleted)

	files.deleted = nil
	s.DisposeImages(context.Background())
	assert.Empty(t, files.deleted)
}

func TestAvatarsRender(t *testing.T) {
	require.Len(t, avatars, 11)
	for _, a := range avatars {
		img := a.render()
		assert.Equal(t, avatarSize, img.Bounds().Dx(), a.name)
		r, g, b, _ := img.At(0, 0).RGBA()
		br, bg, bb, _ := a.bg.RGBA()
		assert.Equal(t, [3]uint32{br, bg, bb}, [3]uint32{r, g, b}, a.name)
	}
}
