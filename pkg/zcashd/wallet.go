package zcashd

// Wallet is the terminal aggregate of a reconstruction pass: every decoded
// category plus the scalar fields. It is assembled exactly once per pass
// and never mutated afterwards; all access goes through getters.
type Wallet struct {
	addressNames       map[Address]string
	addressPurposes    map[Address]string
	bestblock          BlockLocator
	bestblockNomerkle  *BlockLocator
	clientVersion      ClientVersion
	defaultKey         PubKey
	keyPool            map[int64]KeyPoolEntry
	keys               Keys
	legacyHDSeed       *LegacyHDSeed
	minVersion         ClientVersion
	mnemonicHDChain    MnemonicHDChain
	mnemonicPhrase     MnemonicSeed
	networkInfo        NetworkInfo
	orchardTree        OrchardNoteCommitmentTree
	orderPosNext       *int64
	saplingKeys        SaplingKeys
	saplingZAddresses  map[SaplingZPaymentAddress]SaplingIncomingViewingKey
	sendRecipients     map[TxID][]RecipientMapping
	sproutKeys         SproutKeys
	transactions       map[TxID]WalletTx
	unifiedAccounts    UnifiedAccounts
	walletKeys         WalletKeys
	witnessCacheSize   int64
}

func (w *Wallet) AddressNames() map[Address]string    { return w.addressNames }
func (w *Wallet) AddressPurposes() map[Address]string { return w.addressPurposes }
func (w *Wallet) BestBlock() BlockLocator             { return w.bestblock }
func (w *Wallet) BestBlockNoMerkle() *BlockLocator    { return w.bestblockNomerkle }
func (w *Wallet) ClientVersion() ClientVersion        { return w.clientVersion }
func (w *Wallet) DefaultKey() PubKey                  { return w.defaultKey }
func (w *Wallet) KeyPool() map[int64]KeyPoolEntry     { return w.keyPool }
func (w *Wallet) Keys() Keys                          { return w.keys }
func (w *Wallet) LegacyHDSeed() *LegacyHDSeed         { return w.legacyHDSeed }
func (w *Wallet) MinVersion() ClientVersion           { return w.minVersion }
func (w *Wallet) MnemonicHDChain() MnemonicHDChain    { return w.mnemonicHDChain }
func (w *Wallet) MnemonicPhrase() MnemonicSeed        { return w.mnemonicPhrase }
func (w *Wallet) NetworkInfo() NetworkInfo            { return w.networkInfo }
func (w *Wallet) OrderPosNext() *int64                { return w.orderPosNext }
func (w *Wallet) SaplingKeys() SaplingKeys            { return w.saplingKeys }
func (w *Wallet) SproutKeys() SproutKeys              { return w.sproutKeys }
func (w *Wallet) Transactions() map[TxID]WalletTx     { return w.transactions }
func (w *Wallet) UnifiedAccounts() UnifiedAccounts    { return w.unifiedAccounts }
func (w *Wallet) WalletKeys() WalletKeys              { return w.walletKeys }
func (w *Wallet) WitnessCacheSize() int64             { return w.witnessCacheSize }

func (w *Wallet) OrchardNoteCommitmentTree() OrchardNoteCommitmentTree {
	return w.orchardTree
}

func (w *Wallet) SaplingZAddresses() map[SaplingZPaymentAddress]SaplingIncomingViewingKey {
	return w.saplingZAddresses
}

func (w *Wallet) SendRecipients() map[TxID][]RecipientMapping {
	return w.sendRecipients
}
