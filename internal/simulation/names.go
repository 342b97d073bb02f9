package simulation

import (
	"math/rand"

	"github.com/sysu-ecnc-dev/employee-simulator/backend/internal/domain"
)

// 姓名表是固定的,每张表十个条目,按性别区分(捷克语的姓氏有阴性变形)

var maleNames = []string{
	"Jaroslav", "Petr", "Josef", "Pavel", "Martin",
	"Tomáš", "Jan", "Jiří", "Václav", "Karel",
}

var femaleNames = []string{
	"Marie", "Jana", "Eva", "Hana", "Anna",
	"Lenka", "Kateřina", "Lucie", "Věra", "Alena",
}

var maleSurnames = []string{
	"Novák", "Svoboda", "Novotný", "Dvořák", "Černý",
	"Procházka", "Kučera", "Veselý", "Horák", "Němec",
}

var femaleSurnames = []string{
	"Nováková", "Svobodová", "Novotná", "Dvořáková", "Černá",
	"Procházková", "Kučerová", "Veselá", "Horáková", "Němcová",
}

var workloads = []domain.Workload{10, 20, 30, 40}

func randomGender(rng *rand.Rand) domain.Gender {
	if rng.Intn(2) == 0 {
		return domain.GenderMale
	}
	return domain.GenderFemale
}

func randomName(rng *rand.Rand, gender domain.Gender) string {
	if gender == domain.GenderMale {
		return maleNames[rng.Intn(len(maleNames))]
	}
	return femaleNames[rng.Intn(len(femaleNames))]
}

func randomSurname(rng *rand.Rand, gender domain.Gender) string {
	if gender == domain.GenderMale {
		return maleSurnames[rng.Intn(len(maleSurnames))]
	}
	return femaleSurnames[rng.Intn(len(femaleSurnames))]
}

func randomWorkload(rng *rand.Rand) domain.Workload {
	return workloads[rng.Intn(len(workloads))]
}
