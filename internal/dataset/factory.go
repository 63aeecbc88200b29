package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// EmailDomain is used for every generated address
const EmailDomain = "testmail.com"

// emailSeq keeps addresses unique inside one process even when two
// factories share a seed and a millisecond.
var emailSeq atomic.Uint64

// Factory generates users and payment cards.
// Create one per test; the same seed yields the same records apart from email uniqueness.
type Factory struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
	seed  int64
	now   func() time.Time
}

// NewFactory returns a factory seeded with seed, or with the clock when seed is 0
func NewFactory(seed int64) *Factory {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Factory{
		faker: gofakeit.New(seed),
		seed:  seed,
		now:   time.Now,
	}
}

// Seed returns the seed in use so a failing run can be replayed
func (f *Factory) Seed() int64 {
	return f.seed
}

// UniqueEmail returns an address no other call in this process has returned
func (f *Factory) UniqueEmail() string {
	f.mu.Lock()
	prefix := strings.ToLower(f.faker.LetterN(5))
	f.mu.Unlock()

	return fmt.Sprintf("%s%d%d@%s", prefix, f.now().UnixMilli(), emailSeq.Add(1), EmailDomain)
}

// User returns a fresh shopper with a unique email and the valid password
func (f *Factory) User() User {
	email := f.UniqueEmail()

	f.mu.Lock()
	defer f.mu.Unlock()

	fk := f.faker
	return User{
		Name:         fk.FirstName(),
		LastName:     fk.LastName(),
		Email:        email,
		Password:     ValidPassword,
		Company:      fk.Company(),
		Address:      fk.Street(),
		Address2:     fk.Numerify("Apt. ###"),
		State:        fk.State(),
		City:         fk.City(),
		Zipcode:      fk.Zip(),
		MobileNumber: fk.Phone(),
		DateOfBirth: DateOfBirth{
			// 28 keeps every month valid
			Day:   strconv.Itoa(fk.Number(1, 28)),
			Month: fk.RandomString(Months),
			Year:  strconv.Itoa(fk.Number(1900, 2021)),
		},
		Country: fk.RandomString(Countries),
		Gender:  fk.RandomString([]string{GenderMale, GenderFemale}),
	}
}

// PaymentCard returns a synthetic card
func (f *Factory) PaymentCard() PaymentCard {
	f.mu.Lock()
	defer f.mu.Unlock()

	fk := f.faker
	return PaymentCard{
		NameOnCard:      fk.Name(),
		CardNumber:      fk.DigitN(16),
		CVC:             fk.DigitN(3),
		ExpirationMonth: strconv.Itoa(fk.Number(1, 12)),
		ExpirationYear:  strconv.Itoa(f.now().Year() + fk.Number(1, 5)),
	}
}
