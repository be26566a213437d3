package randomstringgenerator

import (
	"accounthub/internal/core/domain/account"
	"math/rand"
	"time"
)

type Generator struct {
	chars []rune
}

func NewGenerator() *Generator {
	rand.Seed(time.Now().UnixNano())
	return &Generator{
		chars: []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"),
	}
}

func (g *Generator) GeneratePublicID() account.PublicID {
	return account.PublicID(g.generate(30))
}

func (g *Generator) GenerateAddressID() account.AddressID {
	return account.AddressID(g.generate(30))
}

func (g *Generator) GenerateSessionToken() account.SessionToken {
	return account.SessionToken(g.generate(32))
}

func (g *Generator) generate(length int) string {
	b := make([]rune, length)
	for i := range b {
		b[i] = g.chars[rand.Intn(len(g.chars))]
	}
	return string(b)
}
