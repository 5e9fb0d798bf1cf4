package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{NotFoundf("patient not found"), KindNotFound},
		{BadReferencef("the referenced patient does not exist"), KindBadReference},
		{Validationf("the CPF must have 11 digits"), KindValidation},
		{Duplicatef("a patient with this CPF already exists"), KindConflictUnique},
		{OneToOnef("the visit already originated an admission"), KindConflictOneToOne},
		{Dependentsf("records are linked to this patient"), KindConflictDependents},
		{Concurrencyf("the patient was modified by another request"), KindConflictConcurrency},
		{Internalf(errors.New("connection reset"), "internal error"), KindInternal},
		{errors.New("plain error"), KindInternal},
	}
	for _, c := range cases {
		if got := KindOf(c.err); got != c.want {
			t.Errorf("KindOf(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("create patient: %w", Duplicatef("duplicate CPF"))
	if got := KindOf(err); got != KindConflictUnique {
		t.Errorf("KindOf(wrapped) = %d, want %d", got, KindConflictUnique)
	}
}

func TestStatus(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindNotFound, http.StatusNotFound},
		{KindBadReference, http.StatusBadRequest},
		{KindValidation, http.StatusBadRequest},
		{KindConflictUnique, http.StatusConflict},
		{KindConflictOneToOne, http.StatusConflict},
		{KindConflictDependents, http.StatusConflict},
		{KindConflictConcurrency, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := Status(c.kind); got != c.want {
			t.Errorf("Status(%d) = %d, want %d", c.kind, got, c.want)
		}
	}
}

func TestError_Message(t *testing.T) {
	err := NotFoundf("record %q not found", "P-001")
	if err.Error() != `record "P-001" not found` {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestInternal_KeepsCause(t *testing.T) {
	cause := errors.New("broken pipe")
	err := Internalf(cause, "internal server error while listing patients")
	if !errors.Is(err, cause) {
		t.Error("expected cause to be unwrappable")
	}
	if err.Message != "internal server error while listing patients" {
		t.Errorf("unexpected public message: %s", err.Message)
	}
}
