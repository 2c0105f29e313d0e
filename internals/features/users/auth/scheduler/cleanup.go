package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"reservasalas_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler varre periodicamente a token_blacklist e
// remove entradas cujo exp já passou do TTL. Substitui o sweep do cache de
// sessões em memória da versão antiga.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDias := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				ttlDias = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Varrendo token_blacklist...")

			deleteBefore := time.Now().Add(-time.Duration(ttlDias) * 24 * time.Hour)

			var vencidos []model.TokenBlacklist
			if err := db.
				Where("expirado_em < ? AND deleted_at IS NULL", deleteBefore).
				Limit(100).
				Find(&vencidos).Error; err != nil {
				log.Printf("[CLEANUP ERROR] Falha ao buscar tokens vencidos: %v", err)
			} else if len(vencidos) > 0 {
				if err := db.Delete(&vencidos).Error; err != nil {
					log.Printf("[CLEANUP ERROR] Falha ao remover tokens: %v", err)
				} else {
					log.Printf("[CLEANUP] %d tokens vencidos removidos", len(vencidos))
				}
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
