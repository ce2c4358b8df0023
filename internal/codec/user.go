package codec

import "github.com/dtroode/taskboard-server/internal/model"

// Storage keys of the user collection. UserName is persisted as "username"
// to stay compatible with existing data.
const (
	UserFieldUserName = "username"
	UserFieldPassword = "password"
	UserFieldEmail    = "email"
)

// User is the field table of model.User.
var User = NewSchema(
	Field[model.User]{
		Get: func(u *model.User) string { return u.ID },
		Set: func(u *model.User, v string) { u.ID = v },
	},
	Field[model.User]{
		Key: UserFieldUserName,
		Get: func(u *model.User) string { return u.UserName },
		Set: func(u *model.User, v string) { u.UserName = v },
	},
	Field[model.User]{
		Key: UserFieldPassword,
		Get: func(u *model.User) string { return u.Password },
		Set: func(u *model.User, v string) { u.Password = v },
	},
	Field[model.User]{
		Key: UserFieldEmail,
		Get: func(u *model.User) string { return u.Email },
		Set: func(u *model.User, v string) { u.Email = v },
	},
)
