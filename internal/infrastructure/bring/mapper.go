package bring

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/basketsync/backend/internal/domain"
	"github.com/google/uuid"
)

// defaultLocale is Bring's article language when an account sets none
const defaultLocale = "de-DE"

type authResponse struct {
	UUID         string `json:"uuid"`
	PublicUUID   string `json:"publicUuid"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	ListUUID     string `json:"bringListUUID"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

type listsResponse struct {
	Lists []domain.BringList `json:"lists"`
}

type setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type listSettings struct {
	ListUUID string    `json:"listUuid"`
	Settings []setting `json:"usersettings"`
}

type userSettingsResponse struct {
	UserSettings     []setting      `json:"usersettings"`
	UserListSettings []listSettings `json:"userlistsettings"`
}

// locales returns the article languages of all lists, falling back to the
// user's browser locale and then to German.
func (r userSettingsResponse) locales() []string {
	set := make(map[string]struct{})
	for _, list := range r.UserListSettings {
		for _, s := range list.Settings {
			if s.Key == "listArticleLanguage" && s.Value != "" {
				set[s.Value] = struct{}{}
			}
		}
	}

	if len(set) == 0 {
		for _, s := range r.UserSettings {
			if s.Key == "browserlocale" && s.Value != "" {
				set[s.Value] = struct{}{}
			}
		}
	}

	if len(set) == 0 {
		set[defaultLocale] = struct{}{}
	}

	return sortedKeys(set)
}

// userLocale is the account's browser locale, or German when unset
func (r userSettingsResponse) userLocale() string {
	for _, s := range r.UserSettings {
		if s.Key == "browserlocale" && s.Value != "" {
			return s.Value
		}
	}
	return defaultLocale
}

// listLocales maps list UUIDs to the article language set on the list
func (r userSettingsResponse) listLocales() map[string]string {
	locales := make(map[string]string, len(r.UserListSettings))
	for _, list := range r.UserListSettings {
		for _, s := range list.Settings {
			if s.Key == "listArticleLanguage" && s.Value != "" {
				locales[list.ListUUID] = s.Value
			}
		}
	}
	return locales
}

type changeRequest struct {
	Accuracy  string               `json:"accuracy"`
	Altitude  string               `json:"altitude"`
	Latitude  string               `json:"latitude"`
	Longitude string               `json:"longitude"`
	ItemID    string               `json:"itemId"`
	Spec      string               `json:"spec"`
	UUID      string               `json:"uuid"`
	Operation domain.ItemOperation `json:"operation"`
}

type batchRequest struct {
	Changes []changeRequest `json:"changes"`
	Sender  string          `json:"sender"`
}

type notificationRequest struct {
	Arguments            []string                `json:"arguments"`
	ListNotificationType domain.NotificationType `json:"listNotificationType"`
	SenderPublicUserUUID string                  `json:"senderPublicUserUuid"`
}

func newBatchRequest(changes []domain.ItemChange, op domain.ItemOperation) batchRequest {
	req := batchRequest{Changes: make([]changeRequest, 0, len(changes))}
	for _, ch := range changes {
		req.Changes = append(req.Changes, changeRequest{
			Accuracy:  "0.0",
			Altitude:  "0.0",
			Latitude:  "0.0",
			Longitude: "0.0",
			ItemID:    ch.ItemID,
			Spec:      ch.Spec,
			UUID:      ch.UUID,
			Operation: op,
		})
	}
	return req
}

// decodeArticles keeps the string entries of an articles.<locale>.json table
func decodeArticles(body []byte) (map[string]string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode articles: %w", err)
	}

	names := make(map[string]string, len(raw))
	for key, value := range raw {
		var name string
		if err := json.Unmarshal(value, &name); err != nil {
			continue
		}
		if name = strings.TrimSpace(name); name != "" {
			names[key] = name
		}
	}
	return names, nil
}

// MapToItemChanges converts ingredients to list item changes, one fresh UUID each
func MapToItemChanges(ingredients []*domain.Ingredient, op domain.ItemOperation) []domain.ItemChange {
	changes := make([]domain.ItemChange, 0, len(ingredients))
	for _, ing := range ingredients {
		if ing == nil {
			continue
		}
		changes = append(changes, domain.ItemChange{
			ItemID:    ing.Name,
			Spec:      ing.Specification,
			UUID:      uuid.NewString(),
			Operation: op,
		})
	}
	return changes
}

// articleKeysByName inverts an article table to display name -> article key.
// When several keys share a name the lexically smallest key wins.
func articleKeysByName(names map[string]string) map[string]string {
	keys := make([]string, 0, len(names))
	for key := range names {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	byName := make(map[string]string, len(names))
	for _, key := range keys {
		if _, ok := byName[names[key]]; !ok {
			byName[names[key]] = key
		}
	}
	return byName
}

// toArticleKeys returns a copy of changes whose item IDs are replaced by
// Bring's article keys. Names without an article stay custom items.
func toArticleKeys(changes []domain.ItemChange, byName map[string]string) []domain.ItemChange {
	out := make([]domain.ItemChange, len(changes))
	copy(out, changes)
	if len(byName) == 0 {
		return out
	}
	for i := range out {
		if key, ok := byName[out[i].ItemID]; ok {
			out[i].ItemID = key
		}
	}
	return out
}
