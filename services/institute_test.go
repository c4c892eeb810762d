package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBlockedInstitute(t *testing.T) {
	blocked := []string{
		"ITER",
		"iter bhubaneswar",
		"SOA University",
		"Siksha 'O' Anusandhan",
		"Siksha-O-Anusandhan University",
		"Institute of Technical Education and Research",
	}
	for _, name := range blocked {
		assert.True(t, IsBlockedInstitute(name), "%q should be blocked", name)
	}

	allowed := []string{
		"NIT Rourkela",
		"KIIT University",
		"Utkal University",
		"CBSE",
	}
	for _, name := range allowed {
		assert.False(t, IsBlockedInstitute(name), "%q should be allowed", name)
	}
}

func TestCheckInstituteAllowed(t *testing.T) {
	assert.NoError(t, CheckInstituteAllowed("KIIT University", "KIIT University"))

	err := CheckInstituteAllowed("ITER", "SOA University")
	assert.Error(t, err)

	// Either field alone triggers the block.
	assert.Error(t, CheckInstituteAllowed("KIIT University", "SOA University"))
	assert.Error(t, CheckInstituteAllowed("ITER", "Utkal University"))
}

func TestIsNitRourkela(t *testing.T) {
	positives := []string{
		"NIT Rourkela",
		"nitrkl",
		"nit rkl",
		"NIT-Rourkela",
		"National Institute of Technology Rourkela",
		"National Institute of Technology, Rourkela",
		"N.I.T. Rourkela",
		"nit rourkela odisha",
		"Rourkela NIT",
		"nitroukela",
	}
	for _, name := range positives {
		assert.True(t, IsNitRourkela(name), "%q should be detected", name)
	}

	negatives := []string{
		"NIT Trichy",
		"IIT Delhi",
		"KIIT University",
		"Rourkela Government College",
		"Trinity College",
	}
	for _, name := range negatives {
		assert.False(t, IsNitRourkela(name), "%q should not be detected", name)
	}
}
