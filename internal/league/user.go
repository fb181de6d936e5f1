package league

import (
	"fmt"
	"strconv"
)

// User is an immutable identity record.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) String() string {
	return fmt.Sprintf("%d %s %s", u.ID, u.Name, u.Email)
}

// leagueUsers is the static member table for the season.
var leagueUsers = []User{
	{ID: 0, Name: "ANDREW", Email: "ACKILPATRICK@GMAIL.COM"},
	{ID: 1, Name: "BARDIA", Email: "BBAKHTARI@GMAIL.COM"},
	{ID: 2, Name: "COOPER", Email: "COOPER.KOCSIS@MATTEL.COM"},
	{ID: 3, Name: "MICAH", Email: "MICAHGOLDMAN@GMAIL.COM"},
	{ID: 4, Name: "RYAN", Email: "RYAN.PIELOW@GMAIL.COM"},
	{ID: 5, Name: "TJ", Email: "TYERKE@YAHOO.COM"},
	{ID: 6, Name: "BRAD", Email: "BRADVASSAR@GMAIL.COM"},
}

// UserDB is the read-only user reference table.
type UserDB struct {
	users []User
	byID  map[int]User
}

// NewUserDB builds the reference table from the static member list.
func NewUserDB() *UserDB {
	return newUserDB(leagueUsers)
}

func newUserDB(users []User) *UserDB {
	db := &UserDB{
		users: users,
		byID:  make(map[int]User, len(users)),
	}
	for _, u := range users {
		db.byID[u.ID] = u
	}
	return db
}

// FromID looks up a user by id.
func (db *UserDB) FromID(id int) (User, error) {
	if u, ok := db.byID[id]; ok {
		return u, nil
	}
	return User{}, &NotFoundError{Kind: "user", Key: strconv.Itoa(id)}
}

// AllUsers returns every league member.
func (db *UserDB) AllUsers() []User {
	out := make([]User, len(db.users))
	copy(out, db.users)
	return out
}
