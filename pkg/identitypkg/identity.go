// Package identitypkg derives stable account identifiers from player names.
package identitypkg

import (
	"github.com/google/uuid"
)

// offlineNamespace matches the namespace used by offline-mode game servers
// when deriving a player id from a name.
var offlineNamespace = uuid.MustParse("00000000-0000-0000-0000-00000000c01e")

// OfflineID derives a deterministic account id for a player name.
// The same name always maps to the same id on every node, which lets
// auto-registration materialize the account without a central authority.
func OfflineID(name string) uuid.UUID {
	return uuid.NewMD5(offlineNamespace, []byte("OfflinePlayer:"+name))
}
