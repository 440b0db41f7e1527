// Package validate holds boundary checks that turn an absent value into an
// AbsentValueError.
//
// Producers passed to these functions are invoked at most once and only when
// the candidate is absent, so building a message or a fallback costs nothing
// on the present path.
package validate

import (
	"github.com/rs/zerolog/log"

	"github.com/bacalhau-project/presence/pkg/lib/optional"
)

// NotAbsent returns the value held by value, or an AbsentValueError without a
// message if there is none.
func NotAbsent[T any](value optional.Optional[T]) (T, error) {
	v, err := value.Get()
	if err != nil {
		return v, absent(newAbsentValueError())
	}
	return v, nil
}

// NotAbsentWithMessage is NotAbsent with message carried verbatim by the error.
func NotAbsentWithMessage[T any](value optional.Optional[T], message string) (T, error) {
	v, err := value.Get()
	if err != nil {
		return v, absent(newAbsentValueErrorWithMessage(message))
	}
	return v, nil
}

// NotAbsentWithMessageFunc is NotAbsent with the error message built by
// producer. producer runs exactly once when value is absent and never
// otherwise. A nil producer yields an error without a message.
func NotAbsentWithMessageFunc[T any](value optional.Optional[T], producer func() string) (T, error) {
	v, err := value.Get()
	if err == nil {
		return v, nil
	}
	if producer == nil {
		return v, absent(newAbsentValueError())
	}
	return v, absent(newAbsentValueErrorWithMessage(producer()))
}

// NotAbsentElseGet returns the value held by value, or else the value produced
// by fallback. fallback runs exactly once when value is absent and never
// otherwise. It fails without a message if fallback is nil or produces an
// absent value.
func NotAbsentElseGet[T any](value optional.Optional[T], fallback func() optional.Optional[T]) (T, error) {
	if v, err := value.Get(); err == nil {
		return v, nil
	}
	if fallback == nil {
		var zero T
		return zero, absent(newAbsentValueError())
	}
	return NotAbsent(fallback())
}

func absent(err error) error {
	log.Trace().Err(err).Msg("required value is absent")
	return err
}
