package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/gophcontacts/internal/client/models"
)

var ErrNoPeople = errors.New("no people stored")

func (a *App) List(ctx context.Context) error {
	people, err := a.people.GetAll(ctx).Get()
	if err != nil {
		return err
	}
	if len(people) == 0 {
		fmt.Fprintln(a.out, ErrNoPeople.Error())
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tPHOTO")
	for _, p := range people {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.FullName(), p.Email, p.Phone, p.ImageState())
	}
	return tw.Flush()
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter person id to show")
	if err != nil {
		return err
	}
	p, err := a.people.GetByID(ctx, id).Get()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "ID:     %s\n", p.ID)
	fmt.Fprintf(a.out, "Name:   %s\n", p.FullName())
	fmt.Fprintf(a.out, "Email:  %s\n", p.Email)
	fmt.Fprintf(a.out, "Phone:  %s\n", p.Phone)
	fmt.Fprintf(a.out, "Photo:  %s\n", p.ImageState())
	if p.HasLocalImage() {
		fmt.Fprintf(a.out, "Local:  %s\n", *p.LocalImage)
	}
	if p.HasRemoteImage() {
		fmt.Fprintf(a.out, "Remote: %s\n", *p.RemoteImage)
	}
	return nil
}

func (a *App) Add(ctx context.Context) error {
	var p models.Person
	if err := a.promptFields(&p); err != nil {
		return err
	}

	created, err := a.people.Create(ctx, p).Get()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Added", created.ID)
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter person id to edit")
	if err != nil {
		return err
	}
	p, err := a.people.GetByID(ctx, id).Get()
	if err != nil {
		return err
	}
	if err := a.promptFields(&p); err != nil {
		return err
	}

	if _, err := a.people.Update(ctx, p).Get(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Saved", p.ID)
	return nil
}

// promptFields asks for every editable field, keeping the current values
// on empty input.
func (a *App) promptFields(p *models.Person) error {
	fields := []struct {
		prompt string
		value  *string
	}{
		{"First name", &p.FirstName},
		{"Last name", &p.LastName},
		{"Email", &p.Email},
		{"Phone", &p.Phone},
	}
	for _, f := range fields {
		v, err := GetDefaultText(a.reader, f.prompt, *f.value, a.out)
		if err != nil {
			return err
		}
		*f.value = v
	}
	return nil
}

// Delete removes the person locally, its local photo and, when online,
// its server record.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter person id to delete")
	if err != nil {
		return err
	}
	p, err := a.people.GetByID(ctx, id).Get()
	if err != nil {
		return err
	}

	if _, err := a.people.Remove(ctx, id).Get(); err != nil {
		return err
	}
	if p.HasLocalImage() {
		if _, err := a.files.DeleteFile(ctx, *p.LocalImage).Get(); err != nil {
			a.logger.Warn(ctx, "photo not deleted", "path", *p.LocalImage, "error", err)
		}
	}
	if a.isLoggedIn() && a.Mode() == ModeOnline {
		if _, err := a.people.DeleteRemote(ctx, id).Get(); err != nil {
			a.logger.Warn(ctx, "remote person not deleted", "id", id, "error", err)
		}
	}

	fmt.Fprintln(a.out, "Deleted", id)
	return nil
}

// Photo copies an image file into the local store and attaches it.
func (a *App) Photo(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter person id")
	if err != nil {
		return err
	}
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	path, err := a.argOrPrompt(rest, "Enter photo file path")
	if err != nil {
		return err
	}

	p, err := a.people.GetByID(ctx, id).Get()
	if err != nil {
		return err
	}
	copied, err := a.files.CopyFile(ctx, path).Get()
	if err != nil {
		return err
	}

	previous := p.LocalImage
	if _, err := a.people.Update(ctx, p.WithLocalImage(copied)).Get(); err != nil {
		_, _ = a.files.DeleteFile(ctx, copied).Get()
		return err
	}
	if previous != nil && *previous != copied {
		if _, err := a.files.DeleteFile(ctx, *previous).Get(); err != nil {
			a.logger.Warn(ctx, "previous photo not deleted", "path", *previous, "error", err)
		}
	}

	fmt.Fprintln(a.out, "Photo attached:", copied)
	return nil
}
