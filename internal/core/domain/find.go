package domain

// MaxUsers is the registry capacity used when none is configured explicitly.
const MaxUsers = 1000

// FindUserBy returns the first user in users for which match returns true.
func FindUserBy(users []User, match func(User) bool) (User, bool) {
	for _, u := range users {
		if match(u) {
			return u, true
		}
	}
	return User{}, false
}

// FindUserByID returns the first user in users with the given id.
func FindUserByID(users []User, id uint32) (User, bool) {
	return FindUserBy(users, func(u User) bool { return u.ID == id })
}
