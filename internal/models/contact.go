package models

// ContactFields contains the contact card fields supplied by the caller.
// Name is the only required field; all others default to empty.
type ContactFields struct {
	Name         string
	Title        string
	Organization string
	MobilePhone  string
	WorkPhone    string
	Email        string
	Website      string
	LinkedIn     string
	Address      string
	Note         string
}
