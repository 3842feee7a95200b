package importer

// SampleDocument is the downloadable import template showing the tag
// vocabulary: classification markers, a question of each type, and the
// option/answer sections.
const SampleDocument = `[Src:校內段考]
[Chap:2]
[Unit:波動]
[Type:Single]
[Q]
(範例) 雙狹縫干涉實驗中，若縫距變小，干涉條紋間距會如何變化？
[Opt]
(A)變大
(B)變小
(C)不變
[Ans] A
[Type:Multi]
[Q]
(範例) 下列哪些屬於電磁波？
[Opt]
(A)可見光
(B)聲波
(C)X射線
(D)水波
[Ans] AC
[Type:Fill]
[Q]
(範例) 真空中光速約為每秒 ______ 公尺。
[Ans] 3x10^8
`
