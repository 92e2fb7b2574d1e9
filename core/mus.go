package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Serializers for stored entities, in the MUS format. Hand-written because
// the nested slice fields of Note do not map onto generated struct options.
var (
	IDMUS         = idMUS{}
	PersonMUS     = personMUS{}
	NoteMUS       = noteMUS{}
	CheckpointMUS = checkpointMUS{}
)

type idMUS struct{}

func (idMUS) Marshal(v ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(v ID) int {
	return varint.Uint64.Size(uint64(v))
}

type personMUS struct{}

func (personMUS) Marshal(v *Person, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.FirstName, bs[n:])
	n += ord.String.Marshal(v.LastName, bs[n:])
	n += ord.String.Marshal(v.Company, bs[n:])
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Email, bs[n:])
	n += ord.String.Marshal(v.Phone, bs[n:])
	n += marshalTime(v.InsertedAt, bs[n:])
	n += marshalTime(v.UpdatedAt, bs[n:])
	return n
}

func (personMUS) Unmarshal(bs []byte) (v *Person, n int, err error) {
	v = &Person{}
	if v.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return nil, n, err
	}
	fields := []*string{&v.FirstName, &v.LastName, &v.Company, &v.Title, &v.Email, &v.Phone}
	for _, f := range fields {
		var n1 int
		if *f, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
			return nil, n + n1, err
		}
		n += n1
	}
	times := []*time.Time{&v.InsertedAt, &v.UpdatedAt}
	for _, t := range times {
		var n1 int
		if *t, n1, err = unmarshalTime(bs[n:]); err != nil {
			return nil, n + n1, err
		}
		n += n1
	}
	return v, n, nil
}

func (personMUS) Size(v *Person) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.FirstName)
	size += ord.String.Size(v.LastName)
	size += ord.String.Size(v.Company)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Email)
	size += ord.String.Size(v.Phone)
	size += sizeTime(v.InsertedAt)
	size += sizeTime(v.UpdatedAt)
	return size
}

type noteMUS struct{}

func (noteMUS) Marshal(v *Note, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.PersonId, bs[n:])
	n += ord.String.Marshal(v.RawText, bs[n:])
	n += marshalStringSlice(v.ActionItems, bs[n:])
	n += varint.Int.Marshal(len(v.Meetings), bs[n:])
	for _, m := range v.Meetings {
		n += marshalTime(m, bs[n:])
	}
	n += varint.Int.Marshal(len(v.Connections), bs[n:])
	for _, c := range v.Connections {
		n += ord.String.Marshal(c.Name, bs[n:])
		n += ord.String.Marshal(c.Relationship, bs[n:])
	}
	n += varint.Int.Marshal(len(v.NetworkMentions), bs[n:])
	for _, m := range v.NetworkMentions {
		n += ord.String.Marshal(m.PersonName, bs[n:])
		n += ord.String.Marshal(m.Company, bs[n:])
		n += ord.String.Marshal(m.Title, bs[n:])
		n += ord.String.Marshal(m.Context, bs[n:])
		n += ord.String.Marshal(m.Snippet, bs[n:])
	}
	n += marshalStringSlice(v.Entities.People, bs[n:])
	n += marshalStringSlice(v.Entities.Companies, bs[n:])
	n += marshalStringSlice(v.Entities.Titles, bs[n:])
	n += marshalStringSlice(v.Entities.Keywords, bs[n:])
	n += marshalTime(v.InsertedAt, bs[n:])
	n += marshalTime(v.UpdatedAt, bs[n:])
	return n
}

func (noteMUS) Unmarshal(bs []byte) (v *Note, n int, err error) {
	v = &Note{}
	var n1 int
	if v.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return nil, n, err
	}
	if v.PersonId, n1, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return nil, n + n1, err
	}
	n += n1
	if v.RawText, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return nil, n + n1, err
	}
	n += n1
	if v.ActionItems, n1, err = unmarshalStringSlice(bs[n:]); err != nil {
		return nil, n + n1, err
	}
	n += n1

	var length int
	if length, n1, err = unmarshalLength(bs[n:]); err != nil {
		return nil, n + n1, err
	}
	n += n1
	for i := 0; i < length; i++ {
		var m time.Time
		if m, n1, err = unmarshalTime(bs[n:]); err != nil {
			return nil, n + n1, err
		}
		n += n1
		v.Meetings = append(v.Meetings, m)
	}

	if length, n1, err = unmarshalLength(bs[n:]); err != nil {
		return nil, n + n1, err
	}
	n += n1
	for i := 0; i < length; i++ {
		var c Connection
		fields := []*string{&c.Name, &c.Relationship}
		for _, f := range fields {
			if *f, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
				return nil, n + n1, err
			}
			n += n1
		}
		v.Connections = append(v.Connections, c)
	}

	if length, n1, err = unmarshalLength(bs[n:]); err != nil {
		return nil, n + n1, err
	}
	n += n1
	for i := 0; i < length; i++ {
		var m NetworkMention
		fields := []*string{&m.PersonName, &m.Company, &m.Title, &m.Context, &m.Snippet}
		for _, f := range fields {
			if *f, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
				return nil, n + n1, err
			}
			n += n1
		}
		v.NetworkMentions = append(v.NetworkMentions, m)
	}

	sets := []*[]string{&v.Entities.People, &v.Entities.Companies, &v.Entities.Titles, &v.Entities.Keywords}
	for _, s := range sets {
		if *s, n1, err = unmarshalStringSlice(bs[n:]); err != nil {
			return nil, n + n1, err
		}
		n += n1
	}

	times := []*time.Time{&v.InsertedAt, &v.UpdatedAt}
	for _, t := range times {
		if *t, n1, err = unmarshalTime(bs[n:]); err != nil {
			return nil, n + n1, err
		}
		n += n1
	}
	return v, n, nil
}

func (noteMUS) Size(v *Note) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.PersonId)
	size += ord.String.Size(v.RawText)
	size += sizeStringSlice(v.ActionItems)
	size += varint.Int.Size(len(v.Meetings))
	for _, m := range v.Meetings {
		size += sizeTime(m)
	}
	size += varint.Int.Size(len(v.Connections))
	for _, c := range v.Connections {
		size += ord.String.Size(c.Name)
		size += ord.String.Size(c.Relationship)
	}
	size += varint.Int.Size(len(v.NetworkMentions))
	for _, m := range v.NetworkMentions {
		size += ord.String.Size(m.PersonName)
		size += ord.String.Size(m.Company)
		size += ord.String.Size(m.Title)
		size += ord.String.Size(m.Context)
		size += ord.String.Size(m.Snippet)
	}
	size += sizeStringSlice(v.Entities.People)
	size += sizeStringSlice(v.Entities.Companies)
	size += sizeStringSlice(v.Entities.Titles)
	size += sizeStringSlice(v.Entities.Keywords)
	size += sizeTime(v.InsertedAt)
	size += sizeTime(v.UpdatedAt)
	return size
}

type checkpointMUS struct{}

func (checkpointMUS) Marshal(v *Checkpoint, bs []byte) (n int) {
	n = ord.String.Marshal(v.JobType, bs)
	n += IDMUS.Marshal(v.LastProcessedId, bs[n:])
	n += marshalTime(v.UpdatedAt, bs[n:])
	return n
}

func (checkpointMUS) Unmarshal(bs []byte) (v *Checkpoint, n int, err error) {
	v = &Checkpoint{}
	var n1 int
	if v.JobType, n, err = ord.String.Unmarshal(bs); err != nil {
		return nil, n, err
	}
	if v.LastProcessedId, n1, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return nil, n + n1, err
	}
	n += n1
	if v.UpdatedAt, n1, err = unmarshalTime(bs[n:]); err != nil {
		return nil, n + n1, err
	}
	n += n1
	return v, n, nil
}

func (checkpointMUS) Size(v *Checkpoint) int {
	return ord.String.Size(v.JobType) + IDMUS.Size(v.LastProcessedId) + sizeTime(v.UpdatedAt)
}

// Timestamps are stored as microseconds since the Unix epoch. Sub-microsecond
// precision and the original location are not preserved.
func marshalTime(t time.Time, bs []byte) int {
	return varint.Int64.Marshal(t.UnixMicro(), bs)
}

func unmarshalTime(bs []byte) (time.Time, int, error) {
	v, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(v).UTC(), n, nil
}

func sizeTime(t time.Time) int {
	return varint.Int64.Size(t.UnixMicro())
}

func marshalStringSlice(v []string, bs []byte) (n int) {
	n = varint.Int.Marshal(len(v), bs)
	for _, s := range v {
		n += ord.String.Marshal(s, bs[n:])
	}
	return n
}

func unmarshalStringSlice(bs []byte) (v []string, n int, err error) {
	length, n, err := unmarshalLength(bs)
	if err != nil {
		return nil, n, err
	}
	for i := 0; i < length; i++ {
		var s string
		var n1 int
		if s, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
			return nil, n + n1, err
		}
		n += n1
		v = append(v, s)
	}
	return v, n, nil
}

func sizeStringSlice(v []string) (size int) {
	size = varint.Int.Size(len(v))
	for _, s := range v {
		size += ord.String.Size(s)
	}
	return size
}

func unmarshalLength(bs []byte) (int, int, error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return 0, n, err
	}
	if length < 0 {
		return 0, n, ErrTruncatedData
	}
	return length, n, nil
}
