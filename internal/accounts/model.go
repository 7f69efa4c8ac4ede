package accounts

// Credential is the single registered user.
type Credential struct {
	Username  string
	Password  string
	Phone     string
	FirstName string
	LastName  string
}

// Outcome strings returned by Register and Login.
const (
	MsgUsernameInvalid = "Username is not correctly formatted, please ensure that your username contains an underscore and is no more than five characters in length."
	MsgPasswordInvalid = "Password is not correctly formatted, please ensure that the password contains at least eight characters, a capital letter, a number, and a special character."
	MsgPhoneInvalid    = "Cell phone number incorrectly formatted or does not contain international code, please correct the number and try again."
	MsgRegistered      = "Username successfully captured.\nPassword successfully captured.\nCell phone number successfully added."

	MsgNotRegistered     = "No user registered yet. Please register first."
	MsgLoginFailed       = "Username or password incorrect, please try again."
	welcomeMessageFormat = "Welcome %s,%s it is great to see you again."
)

// LoginStatus tells the three login outcomes apart.
type LoginStatus int

const (
	LoginMismatch LoginStatus = iota
	LoginNotRegistered
	LoginSucceeded
)

func (s LoginStatus) String() string {
	switch s {
	case LoginSucceeded:
		return "succeeded"
	case LoginNotRegistered:
		return "not_registered"
	default:
		return "mismatch"
	}
}

// RegisterResult is the outcome of Service.Register.
type RegisterResult struct {
	OK      bool
	Message string
}

// LoginResult is the outcome of Service.Login.
type LoginResult struct {
	Status  LoginStatus
	Message string
}

// OK reports whether the login succeeded.
func (r LoginResult) OK() bool { return r.Status == LoginSucceeded }
