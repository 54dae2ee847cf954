// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package file implements the per-column-chunk page writer (compression,
// statistics, dictionary fallback, per-page encryption) and the file-level
// footer pipeline (plaintext/plaintext-footer-signed/encrypted-footer
// framing). Grounded on parquet-cpp's column_writer.cc PageWriter/
// BufferedPageWriter and file_reader.cc's footer magic-byte handling
// (original_source/), and on the teacher's own
// row_group_writer.go/file_writer.go for the write-side footer framing and
// the overall column chunk lifecycle
// (other_examples/apache-arrow__row_group_writer.go,
// other_examples/apache-arrow__file_writer.go).
package file

import (
	"bytes"
	"fmt"
	"io"

	"github.com/parquetcore/parquet-core/parquet/compress"
	"github.com/parquetcore/parquet-core/parquet/format"
	"github.com/parquetcore/parquet-core/parquet/internal/encryption"
	"github.com/parquetcore/parquet-core/parquet/internal/thriftutil"
	"github.com/parquetcore/parquet-core/parquet/metadata"
	"github.com/parquetcore/parquet-core/parquet/schema"
)

// DictionaryState is the dictionary-encoding fallback state machine a
// column chunk's encoder drives: it starts ACTIVE, building a dictionary
// page, and irreversibly falls back to PLAIN once the dictionary would
// grow past its configured size limit.
type DictionaryState int8

const (
	DictActive DictionaryState = iota
	DictFallback
)

// PageWriterConfig is the subset of WriterProperties/ColumnProperties a
// PageWriter needs, threaded through rather than importing the root
// package (which itself depends on this one's sibling packages).
type PageWriterConfig struct {
	Codec             compress.Compression
	CompressionLevel  int
	DataPageVersion   int // 1 or 2
	Encryptor         *encryption.FileEncryptor
	// Encoding is the column's configured non-dictionary data-page encoding
	// (e.g. PLAIN, DELTA_BINARY_PACKED); it feeds ComputeChunkEncodings and
	// is otherwise unused when the chunk never leaves dictionary encoding.
	// The zero value is format.Encoding_PLAIN.
	Encoding format.Encoding
}

// PageWriter serializes a single column chunk's pages to sink: optionally
// compressing each page body, optionally encrypting each page's header
// and body separately, and feeding ColumnChunkMetaDataBuilder the byte
// offsets, sizes and per-(type,encoding) counts it needs to finish the
// chunk's metadata.
type PageWriter struct {
	sink   io.Writer
	descr  *schema.ColumnDescriptor
	cfg    PageWriterConfig
	codec  compress.Codec
	meta   *metadata.ColumnChunkMetaDataBuilder
	encStats metadata.EncodingStats

	path            string
	rowGroupOrdinal int16
	columnOrdinal   int16
	pageOrdinal     int16

	metaEncryptor *encryption.Encryptor
	dataEncryptor *encryption.Encryptor
	fileAad       []byte
	headerAad     []byte
	bodyAad       []byte

	startOffset          int64
	bytesWritten         int64
	uncompressedWritten  int64
	hasDictionaryPage    bool
	dictionaryPageOffset int64
	firstDataPageOffset  int64

	dictState DictionaryState
}

// NewPageWriter constructs a writer for one column chunk starting at the
// current position of sink (sink's write count so far must equal
// startOffset, i.e. the caller tracks the file-absolute offset externally
// and passes it in here).
func NewPageWriter(sink io.Writer, descr *schema.ColumnDescriptor, cfg PageWriterConfig, meta *metadata.ColumnChunkMetaDataBuilder, startOffset int64, rowGroupOrdinal, columnOrdinal int16) (*PageWriter, error) {
	codec, err := compress.GetCodec(cfg.Codec, cfg.CompressionLevel)
	if err != nil {
		return nil, err
	}
	pw := &PageWriter{
		sink:            sink,
		descr:           descr,
		cfg:             cfg,
		codec:           codec,
		meta:            meta,
		encStats:        metadata.EncodingStats{},
		path:            descr.Path().String(),
		rowGroupOrdinal: rowGroupOrdinal,
		columnOrdinal:   columnOrdinal,
		startOffset:     startOffset,
		dictState:       DictActive,
	}
	meta.SetFileOffset(startOffset)
	meta.SetCodec(cfg.Codec)

	if cfg.Encryptor != nil && cfg.Encryptor.IsColumnEncrypted(pw.path) {
		pw.fileAad = cfg.Encryptor.Properties().FileAad()
		pw.metaEncryptor = cfg.Encryptor.MetadataEncryptor(pw.path)
		pw.dataEncryptor = cfg.Encryptor.DataEncryptor(pw.path)
	}
	return pw, nil
}

// DictionaryState reports the writer's current fallback state.
func (pw *PageWriter) DictionaryState() DictionaryState { return pw.dictState }

// FallBackToPlain irreversibly switches the chunk out of dictionary
// encoding; callers (the value encoder) call this once the in-progress
// dictionary would exceed its configured page size limit, per the
// DICT_ACTIVE -> PLAIN_FALLBACK transition in parquet-cpp's
// column_writer.cc TypedColumnWriterImpl::CheckDictionarySizeLimit.
func (pw *PageWriter) FallBackToPlain() { pw.dictState = DictFallback }

func (pw *PageWriter) moduleAad(moduleType encryption.ModuleType) []byte {
	return encryption.CreateModuleAad(pw.fileAad, moduleType, pw.rowGroupOrdinal, pw.columnOrdinal, pw.pageOrdinal, false)
}

// WriteDictionaryPage compresses and (optionally) encrypts a dictionary
// page built from rawValues (already PLAIN-encoded dictionary entries),
// writes it to sink, and records its offset for the chunk's metadata.
func (pw *PageWriter) WriteDictionaryPage(rawValues []byte, numValues int32, enc format.Encoding) error {
	if pw.hasDictionaryPage {
		return fmt.Errorf("parquet: column %q already has a dictionary page", pw.path)
	}
	compressed, err := pw.codec.Compress(nil, rawValues)
	if err != nil {
		return fmt.Errorf("parquet: compressing dictionary page for %q: %w", pw.path, err)
	}

	header := &format.PageHeader{
		Type:                 format.PageType_DICTIONARY_PAGE,
		UncompressedPageSize: int32(len(rawValues)),
		CompressedPageSize:   int32(len(compressed)),
		DictionaryPageHeader: &format.DictionaryPageHeader{NumValues: numValues, Encoding: enc},
	}

	pw.dictionaryPageOffset = pw.startOffset + pw.bytesWritten
	n, err := pw.writePage(header, compressed, encryption.ModuleDictionaryPageHeader, encryption.ModuleDictionaryPage)
	if err != nil {
		return err
	}
	pw.bytesWritten += int64(n)
	pw.hasDictionaryPage = true
	pw.encStats.Add(format.PageType_DICTIONARY_PAGE, enc)
	return nil
}

// DataPageInfo is one data page's already-assembled level+value body (v1:
// repetition levels || definition levels || values, all RLE/BIT_PACKED
// encoded per the header fields; v2: the same three sections but levels
// are never compressed and precede the independently (optionally)
// compressed values section).
type DataPageInfo struct {
	NumValues               int32
	NumNulls                int32 // v2 only
	NumRows                 int32 // v2 only
	Encoding                format.Encoding
	DefinitionLevelEncoding format.Encoding // v1 only
	RepetitionLevelEncoding format.Encoding // v1 only
	DefLevelsByteLength     int32           // v2 only
	RepLevelsByteLength     int32           // v2 only
	Levels                  []byte          // v2 only: uncompressed levels, written before the compressed values
	Values                  []byte          // the value bytes to compress (v1: whole page; v2: just the values section)
	Stats                   *metadata.EncodedStatistics
}

// WriteDataPageV1 compresses and (optionally) encrypts a v1 data page
// (levels and values share one compressed body) and writes it to sink.
func (pw *PageWriter) WriteDataPageV1(info DataPageInfo) error {
	compressed, err := pw.codec.Compress(nil, info.Values)
	if err != nil {
		return fmt.Errorf("parquet: compressing data page for %q: %w", pw.path, err)
	}
	header := &format.PageHeader{
		Type:                 format.PageType_DATA_PAGE,
		UncompressedPageSize: int32(len(info.Values)),
		CompressedPageSize:   int32(len(compressed)),
		DataPageHeader: &format.DataPageHeader{
			NumValues:               info.NumValues,
			Encoding:                info.Encoding,
			DefinitionLevelEncoding: info.DefinitionLevelEncoding,
			RepetitionLevelEncoding: info.RepetitionLevelEncoding,
			Statistics:              info.Stats.ToThrift(),
		},
	}
	return pw.finishDataPage(header, compressed, info)
}

// WriteDataPageV2 compresses only the values section (levels are never
// compressed, per the format) and writes the v2 page to sink.
func (pw *PageWriter) WriteDataPageV2(info DataPageInfo) error {
	compressedValues, err := pw.codec.Compress(nil, info.Values)
	if err != nil {
		return fmt.Errorf("parquet: compressing data page for %q: %w", pw.path, err)
	}
	isCompressed := true
	body := make([]byte, 0, len(info.Levels)+len(compressedValues))
	body = append(body, info.Levels...)
	body = append(body, compressedValues...)

	header := &format.PageHeader{
		Type:                 format.PageType_DATA_PAGE_V2,
		UncompressedPageSize: int32(len(info.Levels) + len(info.Values)),
		CompressedPageSize:   int32(len(body)),
		DataPageHeaderV2: &format.DataPageHeaderV2{
			NumValues:                  info.NumValues,
			NumNulls:                   info.NumNulls,
			NumRows:                    info.NumRows,
			Encoding:                   info.Encoding,
			DefinitionLevelsByteLength: info.DefLevelsByteLength,
			RepetitionLevelsByteLength: info.RepLevelsByteLength,
			IsCompressed:               &isCompressed,
			Statistics:                 info.Stats.ToThrift(),
		},
	}
	return pw.finishDataPage(header, body, info)
}

func (pw *PageWriter) finishDataPage(header *format.PageHeader, body []byte, info DataPageInfo) error {
	if pw.pageOrdinal == 0 {
		pw.firstDataPageOffset = pw.startOffset + pw.bytesWritten
	}
	n, err := pw.writePage(header, body, encryption.ModuleDataPageHeader, encryption.ModuleDataPage)
	if err != nil {
		return err
	}
	pw.bytesWritten += int64(n)
	pw.encStats.Add(header.Type, info.Encoding)
	pw.pageOrdinal++
	return nil
}

// ComputeChunkEncodings deterministically derives a column chunk's
// encodings list from its dictionary state, rather than accumulating one
// ad hoc as pages are written: a dictionary-encoded chunk always reports
// {RLE_DICTIONARY, PLAIN, RLE} (the index encoding, the dictionary page's
// own encoding, and the levels encoding), a non-dictionary chunk reports
// {columnEncoding, RLE}, and a chunk that fell back out of dictionary
// encoding additionally reports PLAIN for the pages written after the
// fallback. RLE is always present because repetition/definition levels
// are RLE/bit-packed encoded regardless of the value encoding in use.
func ComputeChunkEncodings(hasDictionary, fellBackToPlain bool, columnEncoding format.Encoding) []format.Encoding {
	var encs []format.Encoding
	add := func(e format.Encoding) {
		for _, existing := range encs {
			if existing == e {
				return
			}
		}
		encs = append(encs, e)
	}

	if hasDictionary {
		add(format.Encoding_RLE_DICTIONARY)
		add(format.Encoding_PLAIN)
	} else {
		add(columnEncoding)
	}
	add(format.Encoding_RLE)
	if fellBackToPlain {
		add(format.Encoding_PLAIN)
	}
	return encs
}

// writePage serializes header (encrypting it under headerModule's AAD if
// the chunk is encrypted) followed by body (encrypting it under
// bodyModule's AAD if the chunk is data-encrypted), appending both to
// sink, and returns the total bytes written.
func (pw *PageWriter) writePage(header *format.PageHeader, body []byte, headerModule, bodyModule encryption.ModuleType) (int, error) {
	pw.uncompressedWritten += int64(header.UncompressedPageSize)
	var headerBytes, bodyBytes []byte
	var err error

	if pw.metaEncryptor != nil {
		headerBytes, err = thriftutil.SerializeEncrypted(header, pw.metaEncryptor, pw.moduleAad(headerModule))
	} else {
		headerBytes, err = thriftutil.Serialize(header)
	}
	if err != nil {
		return 0, fmt.Errorf("parquet: serializing page header for %q: %w", pw.path, err)
	}

	if pw.dataEncryptor != nil {
		bodyBytes, err = pw.dataEncryptor.Encrypt(body, pw.moduleAad(bodyModule))
		if err != nil {
			return 0, fmt.Errorf("parquet: encrypting page body for %q: %w", pw.path, err)
		}
	} else {
		bodyBytes = body
	}

	buf := bytes.NewBuffer(make([]byte, 0, len(headerBytes)+len(bodyBytes)))
	buf.Write(headerBytes)
	buf.Write(bodyBytes)
	n, err := pw.sink.Write(buf.Bytes())
	if err != nil {
		return 0, fmt.Errorf("parquet: writing page for %q: %w", pw.path, err)
	}
	return n, nil
}

// Close finishes the column chunk: fills in ChunkMetaInfo from the bytes
// actually written, installs the deterministically computed encodings
// list, and hands everything to the metadata builder.
func (pw *PageWriter) Close(numValues int64, stats *metadata.EncodedStatistics) (*format.ColumnChunk, error) {
	info := metadata.ChunkMetaInfo{
		NumValues:            numValues,
		DataPageOffset:       pw.firstDataPageOffset,
		CompressedSize:       pw.bytesWritten,
		HasDictionaryPage:    pw.hasDictionaryPage,
		DictionaryPageOffset: pw.dictionaryPageOffset,
	}
	if !pw.hasDictionaryPage {
		info.DataPageOffset = pw.startOffset
	}
	info.UncompressedSize = pw.uncompressedWritten
	pw.meta.SetEncodings(ComputeChunkEncodings(pw.hasDictionaryPage, pw.dictState == DictFallback, pw.cfg.Encoding))
	return pw.meta.Finish(info, stats, pw.encStats, pw.fileAad)
}

// BufferedPageWriter is the buffered pager variant: it holds an entire
// column chunk's compressed, (already, if applicable) per-page-encrypted
// bytes in memory via an embedded streaming PageWriter writing to an
// internal buffer, and only copies them to the real sink -- shifting every
// file-absolute offset recorded so far by the sink's write position at that
// time -- once Flush is called. Used when a chunk's final file offset isn't
// known until after it has been fully encoded, e.g. because sibling column
// chunks or row groups are being assembled concurrently. Page-level
// encryption already happened as each page was buffered, so Flush does not
// hand an encryptor to the builder a second time: the column metadata's own
// encryption (via the builder's encryptor set at construction) is the only
// encryption that happens at flush time.
type BufferedPageWriter struct {
	inner *PageWriter
	buf   *bytes.Buffer
}

// NewBufferedPageWriter constructs a buffered pager for one column chunk.
// Unlike NewPageWriter, it takes no startOffset: offsets recorded while
// buffering are chunk-relative until Flush shifts them into file-absolute
// terms.
func NewBufferedPageWriter(descr *schema.ColumnDescriptor, cfg PageWriterConfig, meta *metadata.ColumnChunkMetaDataBuilder, rowGroupOrdinal, columnOrdinal int16) (*BufferedPageWriter, error) {
	buf := &bytes.Buffer{}
	inner, err := NewPageWriter(buf, descr, cfg, meta, 0, rowGroupOrdinal, columnOrdinal)
	if err != nil {
		return nil, err
	}
	return &BufferedPageWriter{inner: inner, buf: buf}, nil
}

func (bw *BufferedPageWriter) DictionaryState() DictionaryState { return bw.inner.DictionaryState() }
func (bw *BufferedPageWriter) FallBackToPlain()                 { bw.inner.FallBackToPlain() }

func (bw *BufferedPageWriter) WriteDictionaryPage(rawValues []byte, numValues int32, enc format.Encoding) error {
	return bw.inner.WriteDictionaryPage(rawValues, numValues, enc)
}

func (bw *BufferedPageWriter) WriteDataPageV1(info DataPageInfo) error {
	return bw.inner.WriteDataPageV1(info)
}

func (bw *BufferedPageWriter) WriteDataPageV2(info DataPageInfo) error {
	return bw.inner.WriteDataPageV2(info)
}

// Buffered reports how many bytes have been written to the in-memory sink
// so far, letting a caller assembling several buffered chunks compute each
// one's eventual file-absolute offset before calling Flush on any of them.
func (bw *BufferedPageWriter) Buffered() int64 { return int64(bw.buf.Len()) }

// Flush copies the buffered chunk to sink, shifts every offset the chunk
// has recorded so far by flushOffset (sink's write position before this
// call), and finalizes the chunk's metadata exactly as PageWriter.Close
// does.
func (bw *BufferedPageWriter) Flush(sink io.Writer, flushOffset int64, numValues int64, stats *metadata.EncodedStatistics) (*format.ColumnChunk, error) {
	if _, err := sink.Write(bw.buf.Bytes()); err != nil {
		return nil, fmt.Errorf("parquet: flushing buffered column chunk for %q: %w", bw.inner.path, err)
	}

	bw.inner.startOffset += flushOffset
	bw.inner.dictionaryPageOffset += flushOffset
	bw.inner.firstDataPageOffset += flushOffset
	bw.inner.meta.SetFileOffset(bw.inner.startOffset)

	return bw.inner.Close(numValues, stats)
}
