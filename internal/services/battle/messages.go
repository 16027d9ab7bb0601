package battle

import (
	"fmt"

	battleDomain "github.com/Kkzin999/sun/internal/domain/battle"
)

func strikeMessage(s *battleDomain.Session, hit battleDomain.StrikeResult) string {
	msg := fmt.Sprintf("<@%s> %s atacou e causou %d de dano.", s.CharacterID, s.Opponent.Name, hit.Damage)
	if hit.Absorbed > 0 {
		msg += fmt.Sprintf(" O escudo absorveu %d (restam %d).", hit.Absorbed, s.Shield)
	}
	return msg + fmt.Sprintf(" HP: %d/%d", s.PlayerHP, s.PlayerMaxHP)
}

func defeatMessage(s *battleDomain.Session) string {
	return fmt.Sprintf("<@%s> foi derrotado por %s. Use /rpg rest para se recuperar.", s.CharacterID, s.Opponent.Name)
}
