// Package ids generates the external identifiers used across the API.
// Formats follow the shapes clients already expect: prefixed
// timestamp+random for customer/booking ids, plain uuid4 for payments.
package ids

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func NewCustomerID() string { return prefixed("CUST") }

func NewBookingID() string { return prefixed("BOOK") }

func NewServiceBookingID() string { return prefixed("SBOOK") }

func NewParkingBookingID() string { return prefixed("PBOOK") }

func NewPaymentID() string { return uuid.NewString() }

func NewMembershipID() string { return uuid.NewString() }

func prefixed(prefix string) string {
	ts := time.Now().UnixMilli()
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%s-%d-%s", prefix, ts%1_000_000, suffix)
}
