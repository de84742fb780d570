package client

// Set bundles one client per backend resource, all sharing the same
// bearer token. Each client owns its own transport, so sets produced by
// different NewSet calls never share mutable state and scenarios can
// act as different users concurrently.
type Set struct {
	Orders        *OrdersClient
	Notifications *NotificationsClient
	Ingredients   *IngredientsClient
	Messages      *MessagesClient
	Users         *UsersClient
}

// NewSet wires every domain client for the given base URL and token.
// Constructor-time wiring only; no network calls happen here.
func NewSet(baseURL, token string) *Set {
	return &Set{
		Orders:        NewOrdersClient(baseURL, token),
		Notifications: NewNotificationsClient(baseURL, token),
		Ingredients:   NewIngredientsClient(baseURL, token),
		Messages:      NewMessagesClient(baseURL, token),
		Users:         NewUsersClient(baseURL, token),
	}
}
