package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/basketsync/backend/internal/domain"
	"github.com/basketsync/backend/internal/infrastructure/bring"
	"github.com/basketsync/backend/internal/logger"
)

// ListSyncConfig holds configuration for the list sync client
type ListSyncConfig struct {
	ListName      string
	FuzzyMatching bool
}

// ListSyncClient pushes ingredients into one Bring list.
// The list UUID is resolved once at construction and never again.
type ListSyncClient struct {
	session       domain.BringSession
	translator    *Translator
	listUUID      domain.ListHandle
	fuzzyMatching bool
	log           *logger.Logger
}

// NewListSyncClient logs in and resolves config.ListName (case-insensitive).
// Login errors are returned as-is, without retry. An unknown list name yields
// a *domain.ListNotFoundError; deciding to exit is up to the caller.
func NewListSyncClient(
	ctx context.Context,
	session domain.BringSession,
	translator *Translator,
	config ListSyncConfig,
	log *logger.Logger,
) (*ListSyncClient, error) {
	c := &ListSyncClient{
		session:       session,
		translator:    translator,
		fuzzyMatching: config.FuzzyMatching,
		log:           log.Component("list_sync"),
	}

	if err := session.Login(ctx); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	listUUID, err := c.determineListUUID(ctx, config.ListName)
	if err != nil {
		return nil, err
	}
	c.listUUID = listUUID

	return c, nil
}

func (c *ListSyncClient) determineListUUID(ctx context.Context, listName string) (domain.ListHandle, error) {
	lists, err := c.session.LoadLists(ctx)
	if err != nil {
		return "", fmt.Errorf("load lists: %w", err)
	}

	for _, list := range lists {
		if strings.EqualFold(list.Name, listName) {
			c.log.Info().
				Str("list", listName).
				Str("list_uuid", string(list.UUID)).
				Msg("Found the list")
			return list.UUID, nil
		}
	}

	c.log.Critical().Str("list", listName).Msg("Can not find a list with the configured name")
	return "", &domain.ListNotFoundError{Name: listName}
}

// ListUUID returns the resolved list handle
func (c *ListSyncClient) ListUUID() domain.ListHandle {
	return c.listUUID
}

// AddItems optionally translates the ingredients in place and adds all of
// them with a single batch request. Errors from Bring are returned unchanged;
// a failed catalog refresh only means the previous catalog is used.
func (c *ListSyncClient) AddItems(ctx context.Context, ingredients []*domain.Ingredient) error {
	if c.fuzzyMatching && c.translator != nil {
		if err := c.session.RefreshCatalog(ctx); err != nil {
			c.log.Warn().Err(err).Msg("Could not refresh product catalog, using the previous one")
		}
		if err := c.translator.TranslateItemNames(ctx, c.session.TranslationCatalog(), ingredients); err != nil {
			return err
		}
	}

	changes := bring.MapToItemChanges(ingredients, domain.OperationAdd)

	c.log.Info().Int("items", len(changes)).Str("list_uuid", string(c.listUUID)).Msg("Adding items to list")
	return c.session.BatchUpdateList(ctx, c.listUUID, changes, domain.OperationAdd)
}

// NotifyUsersAboutChangesInList sends one "list changed" notification
func (c *ListSyncClient) NotifyUsersAboutChangesInList(ctx context.Context) error {
	c.log.Debug().Msg("Notifying users about changes in shopping list")
	return c.session.Notify(ctx, c.listUUID, domain.NotificationChangedList)
}
