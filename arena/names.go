package arena

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var adjectives = []string{
	"Brave", "Clever", "Wild", "Swift", "Bold", "Mighty", "Mystic", "Noble",
	"Fierce", "Gentle", "Silent", "Rapid", "Calm", "Proud", "Wise", "Happy",
	"Lucky", "Sneaky", "Cunning", "Bright", "Dark", "Golden", "Silver", "Royal",
}

var animals = []string{
	"Octopus", "Tiger", "Phoenix", "Dragon", "Eagle", "Wolf", "Bear", "Fox",
	"Lion", "Hawk", "Shark", "Panther", "Raven", "Falcon", "Cobra", "Viper",
	"Lynx", "Owl", "Dolphin", "Whale", "Rhino", "Jaguar", "Otter", "Badger",
}

var (
	labelMu  sync.Mutex
	labelRng = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// matchLabel creates a readable match label in format: AdjectiveAnimalNumber
func matchLabel() string {
	labelMu.Lock()
	defer labelMu.Unlock()
	adjective := adjectives[labelRng.Intn(len(adjectives))]
	animal := animals[labelRng.Intn(len(animals))]
	return fmt.Sprintf("%s%s%d", adjective, animal, labelRng.Intn(100))
}
