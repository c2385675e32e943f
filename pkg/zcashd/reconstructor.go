package zcashd

import (
	"bytes"
	"encoding/hex"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/zewif-network/zewif-zcashd/pkg/dump"
	"github.com/zewif-network/zewif-zcashd/pkg/parser"
)

// ReconstructOpts controls a reconstruction pass. Strict makes any
// malformed transaction record fatal; otherwise a malformed transaction is
// logged with its raw bytes and skipped, the only place where a decode
// failure does not abort the pass.
type ReconstructOpts struct {
	Strict bool
}

// ReconstructWallet runs a single pass over the dump, decoding every known
// record category into the wallet aggregate. It returns the wallet
// together with the record identities no decoder claimed; a non-empty
// unclaimed set signals unknown or unsupported categories, not a failure.
// On any fatal error no partial wallet is returned.
func ReconstructWallet(d *dump.Dump, opts ReconstructOpts) (*Wallet, []dump.Key, error) {
	r := &reconstructor{dump: d, strict: opts.Strict}
	wallet, err := r.reconstruct()
	if err != nil {
		return nil, nil, err
	}
	return wallet, d.UnclaimedKeys(), nil
}

type reconstructor struct {
	dump   *dump.Dump
	strict bool
}

// reconstruct decodes the categories in the order they were introduced to
// the format: the version-3 set, then version 5, then version 6. The order
// only documents the schema history; no category depends on another being
// decoded first.
func (r *reconstructor) reconstruct() (*Wallet, error) {
	w := &Wallet{}

	// Since version 3.
	//
	// acc/acentry were removed in 4.5.0, chdseed in 5.0.0; the encrypted
	// categories (ckey, csapzkey, czkey, cmnemonicphrase, mkey) and
	// cscript/destdata/hdchain/sapextfvk/vkey/watchs are left unclaimed.
	var err error
	if w.bestblock, err = r.parseBlockLocator("bestblock"); err != nil {
		return nil, err
	}
	if w.defaultKey, err = r.parseDefaultKey(); err != nil {
		return nil, err
	}
	if w.legacyHDSeed, err = r.parseHDSeed(); err != nil {
		return nil, err
	}
	if w.keys, err = r.parseKeys(); err != nil {
		return nil, err
	}
	if w.minVersion, err = r.parseClientVersion("minversion"); err != nil {
		return nil, err
	}
	if w.addressNames, err = r.parseAddressMap("name"); err != nil {
		return nil, err
	}
	if w.orderPosNext, err = r.parseOptInt64("orderposnext"); err != nil {
		return nil, err
	}
	if w.keyPool, err = r.parseKeyPool(); err != nil {
		return nil, err
	}
	if w.addressPurposes, err = r.parseAddressMap("purpose"); err != nil {
		return nil, err
	}
	if w.saplingZAddresses, err = r.parseSaplingZAddresses(); err != nil {
		return nil, err
	}
	if w.saplingKeys, err = r.parseSaplingKeys(); err != nil {
		return nil, err
	}
	if w.transactions, err = r.parseTransactions(); err != nil {
		return nil, err
	}
	if w.clientVersion, err = r.parseClientVersion("version"); err != nil {
		return nil, err
	}
	if w.witnessCacheSize, err = r.parseInt64("witnesscachesize"); err != nil {
		return nil, err
	}
	if w.walletKeys, err = r.parseWalletKeys(); err != nil {
		return nil, err
	}
	if w.sproutKeys, err = r.parseSproutKeys(); err != nil {
		return nil, err
	}

	// Since version 5.
	if w.networkInfo, err = r.parseNetworkInfo(); err != nil {
		return nil, err
	}
	if w.orchardTree, err = r.parseOrchardNoteCommitmentTree(); err != nil {
		return nil, err
	}
	if w.unifiedAccounts, err = r.parseUnifiedAccounts(); err != nil {
		return nil, err
	}
	if w.mnemonicPhrase, err = r.parseMnemonicPhrase(); err != nil {
		return nil, err
	}
	if w.mnemonicHDChain, err = r.parseMnemonicHDChain(); err != nil {
		return nil, err
	}
	if w.sendRecipients, err = r.parseSendRecipients(); err != nil {
		return nil, err
	}

	// Since version 6.
	if w.bestblockNomerkle, err = r.parseOptBlockLocator("bestblock_nomerkle"); err != nil {
		return nil, err
	}

	return w, nil
}

// valueForKeyname fetches the value of the one record for the keyname and
// claims it.
func (r *reconstructor) valueForKeyname(keyname string) ([]byte, error) {
	record, err := r.dump.RecordForKeyname(keyname)
	if err != nil {
		return nil, err
	}
	r.dump.MarkClaimed(record.Key)
	return record.Value, nil
}

func (r *reconstructor) parseInt64(keyname string) (int64, error) {
	value, err := r.valueForKeyname(keyname)
	if err != nil {
		return 0, err
	}
	p := parser.NewParser(value)
	n, err := parser.ParseInt64(p)
	if err != nil {
		return 0, parser.Wrap(err, "i64 for keyname: "+keyname)
	}
	if err := p.CheckFinished(); err != nil {
		return 0, parser.Wrap(err, "i64 for keyname: "+keyname)
	}
	return n, nil
}

func (r *reconstructor) parseOptInt64(keyname string) (*int64, error) {
	if !r.dump.HasValueForKeyname(keyname) {
		return nil, nil
	}
	n, err := r.parseInt64(keyname)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *reconstructor) parseClientVersion(keyname string) (ClientVersion, error) {
	value, err := r.valueForKeyname(keyname)
	if err != nil {
		return 0, err
	}
	var version ClientVersion
	err = parser.ParseFromBytes(value, &version, "client version for keyname: "+keyname)
	return version, err
}

func (r *reconstructor) parseBlockLocator(keyname string) (BlockLocator, error) {
	value, err := r.valueForKeyname(keyname)
	if err != nil {
		return nil, err
	}
	var locator BlockLocator
	err = parser.ParseFromBytes(value, &locator, "block locator for keyname: "+keyname)
	return locator, err
}

func (r *reconstructor) parseOptBlockLocator(keyname string) (*BlockLocator, error) {
	if !r.dump.HasValueForKeyname(keyname) {
		return nil, nil
	}
	locator, err := r.parseBlockLocator(keyname)
	if err != nil {
		return nil, err
	}
	return &locator, nil
}

func (r *reconstructor) parseDefaultKey() (PubKey, error) {
	value, err := r.valueForKeyname("defaultkey")
	if err != nil {
		return PubKey{}, err
	}
	var pubKey PubKey
	err = parser.ParseFromBytes(value, &pubKey, "defaultkey")
	return pubKey, err
}

// parseKeys decodes the paired key/keymeta categories into keypairs. The
// two categories must hold the same number of records; each keymeta record
// shares its key payload with the key record it describes.
func (r *reconstructor) parseKeys() (Keys, error) {
	keyRecords, err := r.dump.RecordsForKeyname("key")
	if err != nil {
		return nil, parser.Wrap(err, "'key' records")
	}
	metaRecords, err := r.dump.RecordsForKeyname("keymeta")
	if err != nil {
		return nil, parser.Wrap(err, "'keymeta' records")
	}
	if len(keyRecords) != len(metaRecords) {
		return nil, &MismatchedRecordsError{Kind: "key and keymeta"}
	}
	keys := make(Keys, len(keyRecords))
	for _, record := range keyRecords {
		var pubKey PubKey
		if err := parser.ParseFromBytes(record.Key.Data, &pubKey, "pubkey"); err != nil {
			return nil, err
		}
		var privKey PrivKey
		if err := parser.ParseFromBytes(record.Value, &privKey, "privkey"); err != nil {
			return nil, err
		}
		metaKey := dump.NewKey("keymeta", record.Key.Data)
		metaValue, err := r.dump.ValueForKey(metaKey)
		if err != nil {
			return nil, parser.Wrap(err, "metadata")
		}
		var metadata KeyMetadata
		if err := parser.ParseFromBytes(metaValue, &metadata, "metadata"); err != nil {
			return nil, err
		}
		keyPair, err := NewKeyPair(pubKey, privKey, metadata)
		if err != nil {
			return nil, parser.Wrap(err, "keypair for pubkey "+pubKey.Hex())
		}
		keys[pubKey.Hex()] = keyPair

		r.dump.MarkClaimed(record.Key)
		r.dump.MarkClaimed(metaKey)
	}
	return keys, nil
}

func (r *reconstructor) parseWalletKeys() (WalletKeys, error) {
	if !r.dump.HasKeysForKeyname("wkey") {
		return nil, nil
	}
	records, err := r.dump.RecordsForKeyname("wkey")
	if err != nil {
		return nil, parser.Wrap(err, "'wkey' records")
	}
	walletKeys := make(WalletKeys, len(records))
	for _, record := range records {
		var walletKey WalletKey
		if err := parser.ParseFromBytes(record.Key.Data, &walletKey.pubKey, "pubkey"); err != nil {
			return nil, err
		}
		p := parser.NewParser(record.Value)
		if err := parser.Parse(p, &walletKey.privKey, "privkey"); err != nil {
			return nil, err
		}
		if walletKey.timeCreated, err = parser.ParseInt64(p); err != nil {
			return nil, parser.Wrap(err, "time_created")
		}
		if walletKey.timeExpires, err = parser.ParseInt64(p); err != nil {
			return nil, parser.Wrap(err, "time_expires")
		}
		if walletKey.comment, err = parser.ParseString(p); err != nil {
			return nil, parser.Wrap(err, "comment")
		}
		walletKeys[walletKey.pubKey.Hex()] = walletKey

		r.dump.MarkClaimed(record.Key)
	}
	return walletKeys, nil
}

func (r *reconstructor) parseSaplingKeys() (SaplingKeys, error) {
	saplingKeys := make(SaplingKeys)
	if !r.dump.HasKeysForKeyname("sapzkey") {
		return saplingKeys, nil
	}
	keyRecords, err := r.dump.RecordsForKeyname("sapzkey")
	if err != nil {
		return nil, parser.Wrap(err, "'sapzkey' records")
	}
	metaRecords, err := r.dump.RecordsForKeyname("sapzkeymeta")
	if err != nil {
		return nil, parser.Wrap(err, "'sapzkeymeta' records")
	}
	if len(keyRecords) != len(metaRecords) {
		return nil, &MismatchedRecordsError{Kind: "sapzkey and sapzkeymeta"}
	}
	for _, record := range keyRecords {
		var ivk SaplingIncomingViewingKey
		if err := parser.ParseFromBytes(record.Key.Data, &ivk, "ivk"); err != nil {
			return nil, err
		}
		var spendingKey SaplingExtendedSpendingKey
		if err := parser.ParseFromBytes(record.Value, &spendingKey, "spending_key"); err != nil {
			return nil, err
		}
		metaKey := dump.NewKey("sapzkeymeta", record.Key.Data)
		metaValue, err := r.dump.ValueForKey(metaKey)
		if err != nil {
			return nil, parser.Wrap(err, "sapzkeymeta metadata")
		}
		var metadata KeyMetadata
		if err := parser.ParseFromBytes(metaValue, &metadata, "sapzkeymeta metadata"); err != nil {
			return nil, err
		}
		saplingKeys[ivk] = NewSaplingKey(ivk, spendingKey, metadata)

		r.dump.MarkClaimed(record.Key)
		r.dump.MarkClaimed(metaKey)
	}
	return saplingKeys, nil
}

func (r *reconstructor) parseSproutKeys() (SproutKeys, error) {
	if !r.dump.HasKeysForKeyname("zkey") {
		return nil, nil
	}
	keyRecords, err := r.dump.RecordsForKeyname("zkey")
	if err != nil {
		return nil, parser.Wrap(err, "'zkey' records")
	}
	metaRecords, err := r.dump.RecordsForKeyname("zkeymeta")
	if err != nil {
		return nil, parser.Wrap(err, "'zkeymeta' records")
	}
	if len(keyRecords) != len(metaRecords) {
		return nil, &MismatchedRecordsError{Kind: "zkey and zkeymeta"}
	}
	sproutKeys := make(SproutKeys, len(keyRecords))
	for _, record := range keyRecords {
		var paymentAddress SproutPaymentAddress
		if err := parser.ParseFromBytes(record.Key.Data, &paymentAddress, "payment_address"); err != nil {
			return nil, err
		}
		var spendingKey SproutSpendingKey
		if err := parser.ParseFromBytes(record.Value, &spendingKey, "spending_key"); err != nil {
			return nil, err
		}
		metaKey := dump.NewKey("zkeymeta", record.Key.Data)
		metaValue, err := r.dump.ValueForKey(metaKey)
		if err != nil {
			return nil, parser.Wrap(err, "metadata")
		}
		var metadata KeyMetadata
		if err := parser.ParseFromBytes(metaValue, &metadata, "metadata"); err != nil {
			return nil, err
		}
		sproutKeys[paymentAddress] = NewSproutKey(spendingKey, metadata)

		r.dump.MarkClaimed(record.Key)
		r.dump.MarkClaimed(metaKey)
	}
	return sproutKeys, nil
}

// parseAddressMap decodes an address-keyed string map category (name,
// purpose). Duplicate addresses within the category are fatal.
func (r *reconstructor) parseAddressMap(keyname string) (map[Address]string, error) {
	records, err := r.dump.RecordsForKeyname(keyname)
	if err != nil {
		return nil, parser.Wrap(err, "'"+keyname+"' records")
	}
	out := make(map[Address]string, len(records))
	for _, record := range records {
		var address Address
		if err := parser.ParseFromBytes(record.Key.Data, &address, "address"); err != nil {
			return nil, err
		}
		value, err := parseStringBuf(record.Value, keyname)
		if err != nil {
			return nil, err
		}
		if _, ok := out[address]; ok {
			return nil, &DuplicateRecordError{Kind: "address", Key: string(address)}
		}
		out[address] = value

		r.dump.MarkClaimed(record.Key)
	}
	return out, nil
}

func (r *reconstructor) parseSaplingZAddresses() (map[SaplingZPaymentAddress]SaplingIncomingViewingKey, error) {
	out := make(map[SaplingZPaymentAddress]SaplingIncomingViewingKey)
	if !r.dump.HasKeysForKeyname("sapzaddr") {
		return out, nil
	}
	records, err := r.dump.RecordsForKeyname("sapzaddr")
	if err != nil {
		return nil, parser.Wrap(err, "'sapzaddr' records")
	}
	for _, record := range records {
		var paymentAddress SaplingZPaymentAddress
		if err := parser.ParseFromBytes(record.Key.Data, &paymentAddress, "payment address"); err != nil {
			return nil, err
		}
		var viewingKey SaplingIncomingViewingKey
		if err := parser.ParseFromBytes(record.Value, &viewingKey, "viewing key"); err != nil {
			return nil, err
		}
		if _, ok := out[paymentAddress]; ok {
			return nil, &DuplicateRecordError{
				Kind: "payment address",
				Key:  paymentAddress.String(),
			}
		}
		out[paymentAddress] = viewingKey

		r.dump.MarkClaimed(record.Key)
	}
	return out, nil
}

func (r *reconstructor) parseNetworkInfo() (NetworkInfo, error) {
	value, err := r.valueForKeyname("networkinfo")
	if err != nil {
		return NetworkInfo{}, parser.Wrap(err, "'networkinfo' record")
	}
	var networkInfo NetworkInfo
	err = parser.ParseFromBytes(value, &networkInfo, "network info")
	return networkInfo, err
}

func (r *reconstructor) parseOrchardNoteCommitmentTree() (OrchardNoteCommitmentTree, error) {
	value, err := r.valueForKeyname("orchard_note_commitment_tree")
	if err != nil {
		return OrchardNoteCommitmentTree{}, parser.Wrap(err, "'orchard_note_commitment_tree' record")
	}
	var tree OrchardNoteCommitmentTree
	err = parser.ParseFromBytes(value, &tree, "orchard note commitment tree")
	return tree, err
}

func (r *reconstructor) parseKeyPool() (map[int64]KeyPoolEntry, error) {
	records, err := r.dump.RecordsForKeyname("pool")
	if err != nil {
		return nil, parser.Wrap(err, "'pool' records")
	}
	keyPool := make(map[int64]KeyPoolEntry, len(records))
	for _, record := range records {
		p := parser.NewParser(record.Key.Data)
		index, err := parser.ParseInt64(p)
		if err != nil {
			return nil, parser.Wrap(err, "key pool index")
		}
		if err := p.CheckFinished(); err != nil {
			return nil, parser.Wrap(err, "key pool index")
		}
		var entry KeyPoolEntry
		if err := parser.ParseFromBytes(record.Value, &entry, "key pool entry"); err != nil {
			return nil, err
		}
		keyPool[index] = entry

		r.dump.MarkClaimed(record.Key)
	}
	return keyPool, nil
}

func (r *reconstructor) parseHDSeed() (*LegacyHDSeed, error) {
	if !r.dump.HasValueForKeyname("hdseed") {
		return nil, nil
	}
	record, err := r.dump.RecordForKeyname("hdseed")
	if err != nil {
		return nil, parser.Wrap(err, "'hdseed' record")
	}
	var fingerprint SeedFingerprint
	if err := parser.ParseFromBytes(record.Key.Data, &fingerprint, "seed fingerprint"); err != nil {
		return nil, err
	}
	p := parser.NewParser(record.Value)
	seed, err := parser.ParseData(p)
	if err != nil {
		return nil, parser.Wrap(err, "legacy seed data")
	}
	if err := p.CheckFinished(); err != nil {
		return nil, parser.Wrap(err, "legacy seed data")
	}
	r.dump.MarkClaimed(record.Key)
	return &LegacyHDSeed{Fingerprint: fingerprint, Seed: seed}, nil
}

func (r *reconstructor) parseMnemonicPhrase() (MnemonicSeed, error) {
	record, err := r.dump.RecordForKeyname("mnemonicphrase")
	if err != nil {
		return MnemonicSeed{}, parser.Wrap(err, "'mnemonicphrase' record")
	}
	var fingerprint SeedFingerprint
	if err := parser.ParseFromBytes(record.Key.Data, &fingerprint, "seed fingerprint"); err != nil {
		return MnemonicSeed{}, err
	}
	var seed MnemonicSeed
	if err := parser.ParseFromBytes(record.Value, &seed, "mnemonic phrase"); err != nil {
		return MnemonicSeed{}, err
	}
	r.dump.MarkClaimed(record.Key)
	return seed.WithFingerprint(fingerprint), nil
}

func (r *reconstructor) parseMnemonicHDChain() (MnemonicHDChain, error) {
	value, err := r.valueForKeyname("mnemonichdchain")
	if err != nil {
		return MnemonicHDChain{}, parser.Wrap(err, "'mnemonichdchain' record")
	}
	var chain MnemonicHDChain
	err = parser.ParseFromBytes(value, &chain, "mnemonichdchain")
	return chain, err
}

func (r *reconstructor) parseSendRecipients() (map[TxID][]RecipientMapping, error) {
	sendRecipients := make(map[TxID][]RecipientMapping)
	if !r.dump.HasKeysForKeyname("recipientmapping") {
		return sendRecipients, nil
	}
	records, err := r.dump.RecordsForKeyname("recipientmapping")
	if err != nil {
		return nil, parser.Wrap(err, "'recipientmapping' records")
	}
	for _, record := range records {
		p := parser.NewParser(record.Key.Data)
		txid, err := parseHash(p)
		if err != nil {
			return nil, parser.Wrap(err, "txid")
		}
		recipientAddress, err := parser.ParseString(p)
		if err != nil {
			return nil, parser.Wrap(err, "recipient_address")
		}
		if err := p.CheckFinished(); err != nil {
			return nil, err
		}
		unifiedAddress, err := parseStringBuf(record.Value, "unified_address")
		if err != nil {
			return nil, err
		}
		sendRecipients[txid] = append(sendRecipients[txid], RecipientMapping{
			RecipientAddress: recipientAddress,
			UnifiedAddress:   unifiedAddress,
		})

		r.dump.MarkClaimed(record.Key)
	}
	return sendRecipients, nil
}

// parseUnifiedAccounts builds the unified-account aggregate from its three
// record categories; each category may be absent on its own.
func (r *reconstructor) parseUnifiedAccounts() (UnifiedAccounts, error) {
	accounts := NewUnifiedAccounts()

	if r.dump.HasKeysForKeyname("unifiedaddrmeta") {
		records, err := r.dump.RecordsForKeyname("unifiedaddrmeta")
		if err != nil {
			return accounts, parser.Wrap(err, "'unifiedaddrmeta' records")
		}
		for _, record := range records {
			var metadata UnifiedAddressMetadata
			if err := parser.ParseFromBytes(record.Key.Data, &metadata, "UnifiedAddressMetadata key"); err != nil {
				return accounts, err
			}
			if err := r.checkZeroValue(record.Value, "UnifiedAddressMetadata"); err != nil {
				return accounts, err
			}
			accounts.AddressMetadata = append(accounts.AddressMetadata, metadata)
			r.dump.MarkClaimed(record.Key)
		}
	}

	if r.dump.HasKeysForKeyname("unifiedaccount") {
		records, err := r.dump.RecordsForKeyname("unifiedaccount")
		if err != nil {
			return accounts, parser.Wrap(err, "'unifiedaccount' records")
		}
		for _, record := range records {
			var metadata UnifiedAccountMetadata
			if err := parser.ParseFromBytes(record.Key.Data, &metadata, "UnifiedAccountMetadata key"); err != nil {
				return accounts, err
			}
			if err := r.checkZeroValue(record.Value, "UnifiedAccountMetadata"); err != nil {
				return accounts, err
			}
			accounts.AccountMetadata[metadata.KeyID] = metadata
			r.dump.MarkClaimed(record.Key)
		}
	}

	if r.dump.HasKeysForKeyname("unifiedfvk") {
		records, err := r.dump.RecordsForKeyname("unifiedfvk")
		if err != nil {
			return accounts, parser.Wrap(err, "'unifiedfvk' records")
		}
		for _, record := range records {
			var keyID UfvkFingerprint
			if err := parser.ParseFromBytes(record.Key.Data, &keyID, "UnifiedFullViewingKey key"); err != nil {
				return accounts, err
			}
			fvk, err := parseStringBuf(record.Value, "UnifiedFullViewingKey value")
			if err != nil {
				return accounts, err
			}
			accounts.FullViewingKeys[keyID] = fvk
			r.dump.MarkClaimed(record.Key)
		}
	}

	return accounts, nil
}

// checkZeroValue enforces the all-zero u32 value the unified metadata
// categories are constrained to.
func (r *reconstructor) checkZeroValue(value []byte, kind string) error {
	p := parser.NewParser(value)
	v, err := parser.ParseUint32(p)
	if err != nil {
		return parser.Wrap(err, kind+" value")
	}
	if err := p.CheckFinished(); err != nil {
		return parser.Wrap(err, kind+" value")
	}
	if v != 0 {
		return &UnexpectedValueError{Kind: kind, Value: v}
	}
	return nil
}

// parseTransactions decodes the tx category in raw-key order. The txid is
// always taken from the record key before the fallible value decode, so
// duplicate-txid detection is unaffected by the lenient policy.
func (r *reconstructor) parseTransactions() (map[TxID]WalletTx, error) {
	transactions := make(map[TxID]WalletTx)
	if !r.dump.HasKeysForKeyname("tx") {
		return transactions, nil
	}
	records, err := r.dump.RecordsForKeyname("tx")
	if err != nil {
		return nil, parser.Wrap(err, "'tx' records")
	}
	sorted := make([]dump.Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].Key.Data, sorted[j].Key.Data) < 0
	})
	for _, record := range sorted {
		p := parser.NewParser(record.Key.Data)
		txid, err := parseHash(p)
		if err != nil {
			return nil, parser.Wrap(err, "transaction ID")
		}
		if err := p.CheckFinished(); err != nil {
			return nil, parser.Wrap(err, "transaction ID")
		}

		var tx WalletTx
		if err := parser.ParseFromBytes(record.Value, &tx, "transaction"); err != nil {
			if r.strict {
				return nil, err
			}
			log.WithError(err).Warnf(
				"unable to parse transaction data %s",
				hex.EncodeToString(record.Value),
			)
		} else {
			if _, ok := transactions[txid]; ok {
				return nil, &DuplicateRecordError{Kind: "transaction", Key: txid.String()}
			}
			transactions[txid] = tx
		}

		r.dump.MarkClaimed(record.Key)
	}
	return transactions, nil
}

// parseStringBuf decodes a standalone CompactSize-prefixed string value.
func parseStringBuf(buf []byte, what string) (string, error) {
	p := parser.NewParser(buf)
	s, err := parser.ParseString(p)
	if err != nil {
		return "", parser.Wrap(err, what)
	}
	if err := p.CheckFinished(); err != nil {
		return "", parser.Wrap(err, what)
	}
	return s, nil
}
