// Package cli implements the interactive travel journal dashboard.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/travelstory-server/internal/client/api"
	"github.com/dtroode/travelstory-server/internal/client/dashboard"
	"github.com/dtroode/travelstory-server/internal/logger"
	"github.com/dtroode/travelstory-server/internal/model"
)

// StoryAPI is the part of the REST client the dashboard uses.
type StoryAPI interface {
	Register(ctx context.Context, fullName, email, password string) (model.Profile, error)
	Login(ctx context.Context, email, password string) (model.Profile, error)
	Logout()
	GetUser(ctx context.Context) (model.Profile, error)
	UploadImage(ctx context.Context, filename string, file io.Reader) (string, error)
	DeleteImage(ctx context.Context, imageURL string) error
	AddStory(ctx context.Context, in api.StoryInput) (model.Story, error)
	EditStory(ctx context.Context, id uuid.UUID, in api.StoryInput) (model.Story, error)
	ListStories(ctx context.Context) ([]model.Story, error)
	GetStory(ctx context.Context, id uuid.UUID) (model.Story, error)
	DeleteStory(ctx context.Context, id uuid.UUID) error
	SetFavourite(ctx context.Context, id uuid.UUID, isFavourite bool) (model.Story, error)
	SearchStories(ctx context.Context, query string) ([]model.Story, error)
	FilterStoriesByDate(ctx context.Context, start, end time.Time) ([]model.Story, error)
}

// App is the dashboard session of one user.
type App struct {
	api    StoryAPI
	store  *dashboard.Store
	reader *bufio.Reader
	out    io.Writer
	logger *logger.Logger
	now    func() time.Time
	open   func(name string) (io.ReadCloser, error)

	user  *model.Profile
	shown []model.Story
	month time.Time
}

// NewApp creates an App reading commands from in and writing to out.
func NewApp(client StoryAPI, store *dashboard.Store, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	return &App{
		api:    client,
		store:  store,
		reader: bufio.NewReader(in),
		out:    out,
		logger: logger,
		now:    time.Now,
		open:   func(name string) (io.ReadCloser, error) { return os.Open(name) },
	}
}

// Run starts the command loop and returns when the input ends or the user exits.
func (a *App) Run(ctx context.Context) {
	a.printf("Travel Story dashboard (type 'help' for commands)\n")
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) status() string {
	if a.user == nil {
		return "guest"
	}
	return dashboard.Initials(a.user.FullName)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) prompt(text string) (string, error) {
	return GetSimpleText(a.reader, text, a.out)
}

// report prints err for the user and returns it.
func (a *App) report(err error) error {
	if err == nil {
		return nil
	}
	a.printf("Error: %s\n", message(err))
	if api.IsUnauthorized(err) && a.user != nil {
		a.api.Logout()
		a.user = nil
		a.printf("Session expired, please login again\n")
	}
	return err
}

func message(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// pick resolves a 1-based position in the last printed list.
func (a *App) pick(args []string) (model.Story, error) {
	if len(args) == 0 {
		return model.Story{}, fmt.Errorf("story number is required")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.shown) {
		return model.Story{}, fmt.Errorf("no story number %s in the list", args[0])
	}
	return a.shown[n-1], nil
}
