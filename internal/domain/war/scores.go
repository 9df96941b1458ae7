package war

// MaxStarsPerAttack is the best result a single attack can achieve
const MaxStarsPerAttack = 3

// defenseStarWeight scales average stars conceded so that three stars per
// defense maps to zero strength
const defenseStarWeight = 33

// AttackerEfficiency returns stars earned as a percentage of the maximum
// possible for attackCount attacks, or 0 when no attacks were made.
func AttackerEfficiency(starsEarned, attackCount int) float64 {
	if attackCount <= 0 {
		return 0
	}
	return float64(starsEarned) / float64(attackCount*MaxStarsPerAttack) * 100
}

// DefenderStrength scores a defender from 0 to 100; fewer stars conceded per
// defense means a stronger defender. A member never attacked scores 100.
func DefenderStrength(starsLost, defenseCount int) float64 {
	if defenseCount < 1 {
		defenseCount = 1
	}
	strength := 100 - (float64(starsLost)/float64(defenseCount))*defenseStarWeight
	if strength < 0 {
		return 0
	}
	return strength
}
