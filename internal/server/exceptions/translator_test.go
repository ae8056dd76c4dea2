package exceptions

import (
	"errors"
	"net/http"
	"testing"
)

func TestTranslate_KnownDomainErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{
			in:   "REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY",
			want: "tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada",
		},
		{
			in:   "REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER",
			want: "tidak dapat membuat user baru karena username mengandung karakter terlarang",
		},
		{
			in:   "USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION",
			want: "tidak dapat login karena tipe data tidak sesuai",
		},
		{
			in:   "REFRESH_TOKEN.NOT_CONTAIN_NEEDED_SPECIFICATION",
			want: "tidak dapat membuat token karena properti yang dibutuhkan tidak ada",
		},
	}

	for _, tt := range tests {
		got := Translate(errors.New(tt.in))

		var clientErr *ClientError
		if !errors.As(got, &clientErr) {
			t.Fatalf("%s: expected *ClientError, got %T", tt.in, got)
		}
		if clientErr.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tt.in, clientErr.StatusCode)
		}
		if clientErr.Message != tt.want {
			t.Fatalf("%s: message mismatch: got %q", tt.in, clientErr.Message)
		}
	}
}

func TestTranslate_UnknownErrorPassesThrough(t *testing.T) {
	t.Parallel()

	err := errors.New("db down")
	if got := Translate(err); got != err {
		t.Fatalf("expected error unchanged, got %v", got)
	}
}

func TestTranslate_ClientErrorPassesThrough(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("user tidak ditemukan")
	if got := Translate(err); got != err {
		t.Fatalf("expected error unchanged, got %v", got)
	}
}

func TestTranslate_Nil(t *testing.T) {
	t.Parallel()

	if got := Translate(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestClientErrorConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *ClientError
		code int
	}{
		{NewInvariantError("x"), http.StatusBadRequest},
		{NewAuthenticationError("x"), http.StatusUnauthorized},
		{NewNotFoundError("x"), http.StatusNotFound},
	}

	for _, tt := range tests {
		if tt.err.StatusCode != tt.code {
			t.Fatalf("expected %d, got %d", tt.code, tt.err.StatusCode)
		}
		if tt.err.Error() != "x" {
			t.Fatalf("Error() should return the message, got %q", tt.err.Error())
		}
	}
}
