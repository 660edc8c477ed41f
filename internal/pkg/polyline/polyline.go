// Package polyline реализует кодек полилиний Google (precision 1e-5).
// https://developers.google.com/maps/documentation/utilities/polylinealgorithm
package polyline

import (
	"math"

	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/pkg/errors"
)

// Decode декодирует полилинию в последовательность точек.
// Возвращает ErrMalformedPolyline, если поток обрывается внутри 5-битной группы.
func Decode(encoded string) ([]domain.Point, error) {
	if encoded == "" {
		return nil, nil
	}

	points := make([]domain.Point, 0, len(encoded)/4)
	index := 0
	lat := 0
	lon := 0

	for index < len(encoded) {
		latDelta, newIndex, err := decodeValue(encoded, index)
		if err != nil {
			return nil, err
		}
		index = newIndex
		lat += latDelta

		lonDelta, newIndex, err := decodeValue(encoded, index)
		if err != nil {
			return nil, err
		}
		index = newIndex
		lon += lonDelta

		points = append(points, domain.Point{
			Lat: float64(lat) / 1e5,
			Lon: float64(lon) / 1e5,
		})
	}

	return points, nil
}

// decodeValue декодирует одно значение начиная с index.
// Группы по 5 бит, continuation-бит 0x20, zig-zag знак, смещение 63.
func decodeValue(encoded string, index int) (int, int, error) {
	if index >= len(encoded) {
		return 0, index, errors.ErrMalformedPolyline
	}

	shift := 0
	result := 0

	for {
		if index >= len(encoded) {
			// continuation-бит был выставлен, но байтов больше нет
			return 0, index, errors.ErrMalformedPolyline
		}
		b := int(encoded[index]) - 63
		index++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}

	if result&1 != 0 {
		return ^(result >> 1), index, nil
	}
	return result >> 1, index, nil
}

// Encode кодирует последовательность точек в полилинию.
// Round-trip свойство: Decode(Encode(points)) == points с точностью 1e-5.
func Encode(points []domain.Point) string {
	if len(points) == 0 {
		return ""
	}

	encoded := make([]byte, 0, len(points)*4)
	prevLat := 0
	prevLon := 0

	for _, p := range points {
		lat := int(math.Round(p.Lat * 1e5))
		lon := int(math.Round(p.Lon * 1e5))

		encoded = encodeValue(encoded, lat-prevLat)
		encoded = encodeValue(encoded, lon-prevLon)

		prevLat = lat
		prevLon = lon
	}

	return string(encoded)
}

func encodeValue(buf []byte, value int) []byte {
	if value < 0 {
		value = ^(value << 1)
	} else {
		value <<= 1
	}

	for value >= 0x20 {
		buf = append(buf, byte((value&0x1f)|0x20)+63)
		value >>= 5
	}
	buf = append(buf, byte(value)+63)

	return buf
}
