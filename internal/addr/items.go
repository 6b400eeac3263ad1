// Package addr enumerates the screens shown while the user verifies a
// public key and its address on the device.
package addr

import (
	"github.com/rs/zerolog/log"

	"FLOWADDR/internal/hdpath"
	"FLOWADDR/internal/pager"
)

const (
	labelPublicKey = "Pub Key"
	labelAddress   = "Address:"
	labelVerify    = "Verify if this"
	labelPath      = "Your Path"

	textEmptySlot    = "Not saved on the device."
	textPathMismatch = "Other path is saved on the device."
	textVerifyIntro  = " public key was   added to"
)

// item is one logical screen. present decides whether it takes part in the
// menu for a context; render fills the output buffers and reports the page
// count of the value.
type item struct {
	present func(Context) bool
	render  func(c Context, label, value []byte, page int) (int, error)
}

// Why(中文): 条目数量与索引解析共用同一张有序表，两者不可能各自漂移。
// Why(English): Item count and index resolution read the same ordered table, so they cannot drift apart.
var items = [...]item{
	{always, renderPublicKey},
	{always, renderAddress},
	{confirmed, renderVerifyIntro},
	{confirmed, renderVerifyAddress},
	{expert, renderPath},
}

func always(Context) bool      { return true }
func confirmed(c Context) bool { return c.Mode == ConfirmedShown }
func expert(c Context) bool    { return c.Expert }

// NumItems returns how many screens the menu iterates for c.
func NumItems(c Context) int {
	n := 0
	for _, it := range items {
		if it.present(c) {
			n++
		}
	}
	log.Trace().Stringer("mode", c.Mode).Bool("expert", c.Expert).Int("items", n).Msg("addr_getNumItems")
	return n
}

// GetItem renders screen index, page page, into the caller's buffers. The
// buffer lengths are their capacities; both outputs are NUL-terminated and
// silently truncated. It returns the page count of the value, which the
// caller discovers by asking for page 0 first.
//
// ErrNoData is returned for an index outside [0, NumItems(c)), for a page
// outside [0, pageCount), and (as ErrUnexpectedMode) when the address
// screen has nothing to show for c.Mode.
func GetItem(c Context, index int, label, value []byte, page int) (int, error) {
	log.Trace().Int("index", index).Int("page", page).Msg("addr_getItem")

	if index < 0 {
		return 0, ErrNoData
	}
	for _, it := range items {
		if !it.present(c) {
			continue
		}
		if index > 0 {
			index--
			continue
		}
		pageCount, err := it.render(c, label, value, page)
		if err != nil {
			return 0, err
		}
		if page < 0 || page >= pageCount {
			clear(value)
			return pageCount, ErrNoData
		}
		return pageCount, nil
	}
	return 0, ErrNoData
}

func renderPublicKey(c Context, label, value []byte, page int) (int, error) {
	pager.Format(label, labelPublicKey)
	return pager.Page(value, c.Keys.PublicKeyText(), page), nil
}

func renderAddress(c Context, label, value []byte, page int) (int, error) {
	switch c.Mode {
	case EmptySlot:
		pager.Format(label, labelAddress)
		return pager.Page(value, textEmptySlot, page), nil
	case PathMismatch:
		pager.Format(label, labelAddress)
		return pager.Page(value, textPathMismatch, page), nil
	case ConfirmedShown:
		pager.Format(label, labelAddress)
		return pager.Page(value, c.Keys.AddressText(), page), nil
	default:
		log.Debug().Stringer("mode", c.Mode).Msg("address screen requested without an address to show")
		return 0, ErrUnexpectedMode
	}
}

func renderVerifyIntro(_ Context, label, value []byte, _ int) (int, error) {
	pager.Format(label, labelVerify)
	pager.Format(value, textVerifyIntro)
	return 1, nil
}

// The address doubles as the label here and is never paged.
func renderVerifyAddress(c Context, label, value []byte, _ int) (int, error) {
	pager.Format(label, c.Keys.AddressText())
	pager.Format(value, verifyExplorerText)
	return 1, nil
}

func renderPath(c Context, label, value []byte, page int) (int, error) {
	pager.Format(label, labelPath)
	var buf [hdpath.MaxTextLen]byte
	pager.Format(buf[:], c.Path.String())
	return pager.Page(value, pager.Text(buf[:]), page), nil
}
