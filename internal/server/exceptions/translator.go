package exceptions

// directories maps the named entity-validation errors to the localized
// invariant errors shown to API clients.
var directories = map[string]*ClientError{
	"REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY": NewInvariantError(
		"tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada"),
	"REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION": NewInvariantError(
		"tidak dapat membuat user baru karena tipe data tidak sesuai"),
	"REGISTER_USER.USERNAME_LIMIT_CHAR": NewInvariantError(
		"tidak dapat membuat user baru karena karakter username melebihi batas limit"),
	"REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER": NewInvariantError(
		"tidak dapat membuat user baru karena username mengandung karakter terlarang"),
	"USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY": NewInvariantError(
		"tidak dapat login karena properti yang dibutuhkan tidak ada"),
	"USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION": NewInvariantError(
		"tidak dapat login karena tipe data tidak sesuai"),
	"REFRESH_TOKEN.NOT_CONTAIN_NEEDED_SPECIFICATION": NewInvariantError(
		"tidak dapat membuat token karena properti yang dibutuhkan tidak ada"),
	"REFRESH_TOKEN.NOT_MEET_DATA_TYPE_SPECIFICATION": NewInvariantError(
		"tidak dapat membuat token karena tipe data tidak sesuai"),
}

// Translate maps a named domain error to its localized ClientError.
// Errors without a mapping are returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if translated, ok := directories[err.Error()]; ok {
		return translated
	}
	return err
}
