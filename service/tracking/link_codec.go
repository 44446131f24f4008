package tracking

import (
	"errors"
	"time"

	"github.com/QuangTung97/reva-click/model"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	linkFieldID         protowire.Number = 1
	linkFieldCampaignID protowire.Number = 2
	linkFieldPromoterID protowire.Number = 3
	linkFieldCodeHash   protowire.Number = 4
	linkFieldCode       protowire.Number = 5
	linkFieldCreatedAt  protowire.Number = 6
)

var errInvalidLinkData = errors.New("invalid cached tracking link data")

func marshalLink(link model.TrackingLink) []byte {
	var b []byte

	b = protowire.AppendTag(b, linkFieldID, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(link.ID))

	b = protowire.AppendTag(b, linkFieldCampaignID, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(link.CampaignID))

	b = protowire.AppendTag(b, linkFieldPromoterID, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(link.PromoterID))

	b = protowire.AppendTag(b, linkFieldCodeHash, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, link.CodeHash)

	b = protowire.AppendTag(b, linkFieldCode, protowire.BytesType)
	b = protowire.AppendString(b, link.Code)

	b = protowire.AppendTag(b, linkFieldCreatedAt, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(link.CreatedAt.UnixNano()))

	return b
}

func unmarshalLink(data []byte) (model.TrackingLink, error) {
	var link model.TrackingLink

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return model.TrackingLink{}, errInvalidLinkData
		}
		data = data[n:]

		switch {
		case num == linkFieldID && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return model.TrackingLink{}, errInvalidLinkData
			}
			link.ID = int64(v)
			data = data[n:]

		case num == linkFieldCampaignID && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return model.TrackingLink{}, errInvalidLinkData
			}
			link.CampaignID = int64(v)
			data = data[n:]

		case num == linkFieldPromoterID && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return model.TrackingLink{}, errInvalidLinkData
			}
			link.PromoterID = int64(v)
			data = data[n:]

		case num == linkFieldCodeHash && typ == protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(data)
			if n < 0 {
				return model.TrackingLink{}, errInvalidLinkData
			}
			link.CodeHash = v
			data = data[n:]

		case num == linkFieldCode && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return model.TrackingLink{}, errInvalidLinkData
			}
			link.Code = v
			data = data[n:]

		case num == linkFieldCreatedAt && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return model.TrackingLink{}, errInvalidLinkData
			}
			link.CreatedAt = time.Unix(0, protowire.DecodeZigZag(v)).UTC()
			data = data[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return model.TrackingLink{}, errInvalidLinkData
			}
			data = data[n:]
		}
	}

	if link.ID == 0 || link.Code == "" {
		return model.TrackingLink{}, errInvalidLinkData
	}
	return link, nil
}
