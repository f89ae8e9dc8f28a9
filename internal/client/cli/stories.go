package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dtroode/travelstory-server/internal/client/api"
	"github.com/dtroode/travelstory-server/internal/model"
)

// refresh reloads the full list from the server and prints the displayed subset.
func (a *App) refresh(ctx context.Context) error {
	stories, err := a.api.ListStories(ctx)
	if err != nil {
		return a.report(err)
	}
	a.store.SetStories(stories)
	if err := a.store.Settle(ctx); err != nil {
		return err
	}
	a.printList(a.store.Displayed())
	return nil
}

func (a *App) List(ctx context.Context) error {
	return a.refresh(ctx)
}

func (a *App) Show(ctx context.Context, args []string) error {
	picked, err := a.pick(args)
	if err != nil {
		return a.report(err)
	}

	story, err := a.api.GetStory(ctx, picked.ID)
	if err != nil {
		return a.report(err)
	}
	a.printStory(story)
	return nil
}

func (a *App) Add(ctx context.Context) error {
	in, err := a.readStory(model.Story{})
	if err != nil {
		return a.report(err)
	}

	path, err := a.prompt("Image file")
	if err != nil {
		return err
	}
	if path == "" {
		return a.report(fmt.Errorf("an image is required"))
	}
	if in.ImageURL, err = a.upload(ctx, path); err != nil {
		return a.report(err)
	}

	story, err := a.api.AddStory(ctx, in)
	if err != nil {
		a.removeImage(ctx, in.ImageURL)
		return a.report(err)
	}

	a.printf("Added %q\n", story.Title)
	return a.refresh(ctx)
}

func (a *App) Edit(ctx context.Context, args []string) error {
	current, err := a.pick(args)
	if err != nil {
		return a.report(err)
	}

	in, err := a.readStory(current)
	if err != nil {
		return a.report(err)
	}

	path, err := a.prompt("Image file (empty keeps the current one)")
	if err != nil {
		return err
	}
	in.ImageURL = current.ImageURL
	if path != "" {
		if in.ImageURL, err = a.upload(ctx, path); err != nil {
			return a.report(err)
		}
	}
	replaced := in.ImageURL != current.ImageURL

	story, err := a.api.EditStory(ctx, current.ID, in)
	if err != nil {
		if replaced {
			a.removeImage(ctx, in.ImageURL)
		}
		return a.report(err)
	}
	if replaced && current.ImageURL != "" {
		a.removeImage(ctx, current.ImageURL)
	}

	a.printf("Updated %q\n", story.Title)
	return a.refresh(ctx)
}

func (a *App) Delete(ctx context.Context, args []string) error {
	story, err := a.pick(args)
	if err != nil {
		return a.report(err)
	}

	answer, err := a.prompt(fmt.Sprintf("Delete %q? (y/N)", story.Title))
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		a.printf("Cancelled\n")
		return nil
	}

	if err := a.api.DeleteStory(ctx, story.ID); err != nil {
		return a.report(err)
	}

	a.printf("Deleted %q\n", story.Title)
	return a.refresh(ctx)
}

// Favourite flips the favourite flag of a story.
func (a *App) Favourite(ctx context.Context, args []string) error {
	story, err := a.pick(args)
	if err != nil {
		return a.report(err)
	}

	if _, err := a.api.SetFavourite(ctx, story.ID, !story.IsFavourite); err != nil {
		return a.report(err)
	}
	return a.refresh(ctx)
}

// readStory prompts for story fields. Empty answers keep the values of current.
func (a *App) readStory(current model.Story) (api.StoryInput, error) {
	in := api.StoryInput{
		Title:           current.Title,
		Story:           current.Story,
		VisitedLocation: current.VisitedLocation,
		VisitedDate:     current.VisitedDate,
	}

	title, err := a.prompt("Title")
	if err != nil {
		return in, err
	}
	if title != "" {
		in.Title = title
	}

	text, err := GetMultiline(a.reader, "Story", a.out)
	if err != nil {
		return in, err
	}
	if text != "" {
		in.Story = text
	}

	locations, err := GetList(a.reader, "Visited locations (comma separated)", a.out)
	if err != nil {
		return in, err
	}
	if len(locations) > 0 {
		in.VisitedLocation = locations
	}

	date, err := a.prompt("Visited date (YYYY-MM-DD, empty for today)")
	if err != nil {
		return in, err
	}
	switch {
	case date != "":
		if in.VisitedDate, err = parseDate(date); err != nil {
			return in, err
		}
	case in.VisitedDate.IsZero():
		in.VisitedDate = startOfDay(a.now())
	}

	return in, nil
}

// removeImage deletes a hosted image no story refers to any more.
func (a *App) removeImage(ctx context.Context, imageURL string) {
	if err := a.api.DeleteImage(ctx, imageURL); err != nil {
		a.logger.Warn("cli: failed to remove unused image", "image_url", imageURL, "error", err)
	}
}

func (a *App) upload(ctx context.Context, path string) (string, error) {
	f, err := a.open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	url, err := a.api.UploadImage(ctx, filepath.Base(path), f)
	if err != nil {
		return "", err
	}
	return url, nil
}
