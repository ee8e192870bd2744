package domain

// Ingredient is a single item to be put on the shopping list.
// Name and Specification may be rewritten by the translator.
type Ingredient struct {
	Name          string `json:"name"`
	Specification string `json:"specification"`
}

// ListHandle is the opaque identifier Bring uses for a shopping list
type ListHandle string

// BringList is one entry of the account's list overview
type BringList struct {
	UUID  ListHandle `json:"listUuid"`
	Name  string     `json:"name"`
	Theme string     `json:"theme,omitempty"`
}

// ItemOperation is the kind of change applied to a list item
type ItemOperation string

const (
	OperationAdd      ItemOperation = "TO_PURCHASE"
	OperationComplete ItemOperation = "TO_RECENTLY"
	OperationRemove   ItemOperation = "REMOVE"
)

// Valid reports whether Bring knows the operation
func (o ItemOperation) Valid() bool {
	switch o {
	case OperationAdd, OperationComplete, OperationRemove:
		return true
	}
	return false
}

// ItemChange is a single entry of a batch update
type ItemChange struct {
	ItemID    string        `json:"itemId"`
	Spec      string        `json:"spec"`
	UUID      string        `json:"uuid"`
	Operation ItemOperation `json:"operation"`
}

// NotificationType selects the push message sent to list members
type NotificationType string

const (
	NotificationChangedList   NotificationType = "CHANGED_LIST"
	NotificationGoingShopping NotificationType = "GOING_SHOPPING"
	NotificationShoppingDone  NotificationType = "SHOPPING_DONE"
	NotificationUrgentMessage NotificationType = "URGENT_MESSAGE"
)

// Valid reports whether Bring knows the notification type
func (n NotificationType) Valid() bool {
	switch n {
	case NotificationChangedList, NotificationGoingShopping, NotificationShoppingDone, NotificationUrgentMessage:
		return true
	}
	return false
}

// ProductCatalog maps a locale (e.g. "de-DE") to Bring's article key -> display name table
type ProductCatalog map[string]map[string]string

// Empty reports whether the catalog holds no product names at all
func (c ProductCatalog) Empty() bool {
	for _, names := range c {
		if len(names) > 0 {
			return false
		}
	}
	return true
}
