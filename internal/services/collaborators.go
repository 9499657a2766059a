package services

import "context"

// The interfaces below are implemented by the surrounding application, not by this module.

type User struct {
	ID    string
	Name  string
	Email string
}

type SessionProvider interface {
	CurrentUser(ctx context.Context) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	Logout(ctx context.Context) error
}

type Router interface {
	Navigate(route string, params map[string]string) error
}

type Permission string

const (
	PermissionNotifications Permission = "notifications"
	PermissionPhotos        Permission = "photos"
)

type PermissionService interface {
	RequestPermission(ctx context.Context, kind Permission) (granted bool, err error)
}

type ImagePicker interface {
	PickImage(ctx context.Context) (uri string, err error)
}
