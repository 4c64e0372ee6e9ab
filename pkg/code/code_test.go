package code

import (
	"errors"
	"net/http"
	"testing"
)

func TestMsgWithArgs(t *testing.T) {
	got := ErrorDocumentNotExist.WithArgs("notes.txt").Msg()
	want := "notes.txt does not exist."
	if got != want {
		t.Errorf("Msg() = %q, want %q", got, want)
	}
}

func TestWithArgsDoesNotMutateOriginal(t *testing.T) {
	_ = ErrorDocumentAlreadyExists.WithArgs("a.txt")
	if got := ErrorDocumentAlreadyExists.Msg(); got != "%s already exists." {
		t.Errorf("original message mutated: %q", got)
	}
}

func TestIs(t *testing.T) {
	err := error(ErrorDocumentNotExist.WithArgs("a.md"))
	if !ErrorDocumentNotExist.Is(err) {
		t.Error("Is() should match the same code with bound args")
	}
	if ErrorDocumentAlreadyExists.Is(err) {
		t.Error("Is() matched a different code")
	}
	if ErrorDocumentNotExist.Is(errors.New("plain")) {
		t.Error("Is() matched a plain error")
	}
}

func TestStatusCode(t *testing.T) {
	if got := ErrorDocumentNameRequired.StatusCode(); got != http.StatusUnprocessableEntity {
		t.Errorf("StatusCode() = %d, want %d", got, http.StatusUnprocessableEntity)
	}
	if got := ErrorDocumentNotExist.StatusCode(); got != http.StatusOK {
		t.Errorf("StatusCode() = %d, want %d", got, http.StatusOK)
	}
}

func TestErrorInterface(t *testing.T) {
	var err error = ErrorUserInvalidCredentials
	if err.Error() != "Invalid credentials" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestGlobalLang(t *testing.T) {
	defer func() {
		if err := SetGlobalDefaultLang("en"); err != nil {
			t.Fatal(err)
		}
	}()

	if err := SetGlobalDefaultLang("zh_cn"); err != nil {
		t.Fatal(err)
	}
	if got := ErrorUserInvalidCredentials.Msg(); got != "用户名或密码错误" {
		t.Errorf("zh_cn Msg() = %q", got)
	}

	// 不支持的语言回退到英文
	if err := SetGlobalDefaultLang("fr"); err == nil {
		t.Error("expected error for unsupported language")
	}
	if GetGlobalDefaultLang() != FALLBACK_LNG {
		t.Errorf("lang after bad set = %q, want %q", GetGlobalDefaultLang(), FALLBACK_LNG)
	}
}
