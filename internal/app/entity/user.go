package entity

type UserID string

func (id UserID) String() string {
	return string(id)
}

func (id UserID) Valid() bool {
	return len(id) > 0
}

type User struct {
	ID       UserID
	Login    string
	Password string
	IsAdmin  bool
}

// Caller is the authenticated identity attached to an inbound request.
type Caller struct {
	UserID  UserID
	IsAdmin bool
}

func (c Caller) Valid() bool {
	return c.UserID.Valid()
}

type CallerCtxKey struct{}

type CallerCtx struct {
	Caller     Caller
	StatusCode int
}

func CreateCallerCtx(caller Caller, code int) CallerCtx {
	return CallerCtx{
		Caller:     caller,
		StatusCode: code,
	}
}
